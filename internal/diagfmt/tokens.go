package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"bassil/internal/source"
	"bassil/internal/token"
)

// TokenRecord is the serialized form of one token. Columns are 1-based and
// inclusive on both ends.
type TokenRecord struct {
	Kind     string `json:"kind" msgpack:"kind"`
	Value    string `json:"value" msgpack:"value"`
	Line     uint32 `json:"line" msgpack:"line"`
	StartCol uint32 `json:"start_column" msgpack:"start_column"`
	EndCol   uint32 `json:"end_column" msgpack:"end_column"`
}

// TokenRecords resolves positions for a token slice.
func TokenRecords(tokens []token.Token, fs *source.FileSet) []TokenRecord {
	records := make([]TokenRecord, 0, len(tokens))
	for _, tok := range tokens {
		line, startCol, endCol := fs.ResolveInclusive(tok.Span)
		records = append(records, TokenRecord{
			Kind:     tok.Kind.String(),
			Value:    tok.Text,
			Line:     line,
			StartCol: startCol,
			EndCol:   endCol,
		})
	}
	return records
}

// FormatRecordsPretty writes a human-readable token listing.
func FormatRecordsPretty(w io.Writer, records []TokenRecord) error {
	for i, rec := range records {
		if _, err := fmt.Fprintf(w, "%3d: %-14s %q at %d:%d-%d\n",
			i+1, rec.Kind, rec.Value, rec.Line, rec.StartCol, rec.EndCol); err != nil {
			return err
		}
	}
	return nil
}

// FormatRecordsJSONL writes one JSON object per line, the stable exchange
// format consumed by later pipeline stages.
func FormatRecordsJSONL(w io.Writer, records []TokenRecord) error {
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

// FormatRecordsMsgpack writes the records as a single msgpack array, the
// compact format used for cached token streams.
func FormatRecordsMsgpack(w io.Writer, records []TokenRecord) error {
	return msgpack.NewEncoder(w).Encode(records)
}

// FormatTokensPretty resolves and pretty-prints a token slice.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	return FormatRecordsPretty(w, TokenRecords(tokens, fs))
}

// FormatTokensJSONL resolves and emits a token slice as JSON lines.
func FormatTokensJSONL(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	return FormatRecordsJSONL(w, TokenRecords(tokens, fs))
}

// FormatTokensMsgpack resolves and emits a token slice as msgpack.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	return FormatRecordsMsgpack(w, TokenRecords(tokens, fs))
}
