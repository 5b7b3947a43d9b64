package xdata

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Encode serializes db as JSON and zstd-compresses the result. This is the
// inverse of Decode, and the pair is exercised by the round-trip test that
// stands in for the "serialize + compress + decompress + deserialize =
// identity" invariant the real embedded artifact must satisfy.
func Encode(db *Database) ([]byte, error) {
	payload, err := json.Marshal(db)
	if err != nil {
		return nil, errors.Wrap(err, "xraydb: encoding database payload")
	}
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "xraydb: creating zstd writer")
	}
	if _, err := w.Write(payload); err != nil {
		w.Close()
		return nil, errors.Wrap(err, "xraydb: compressing database payload")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "xraydb: finalizing zstd stream")
	}
	return buf.Bytes(), nil
}

// Decode decompresses and deserializes a blob produced by Encode (or the
// embedded build-time artifact). Any failure here is treated as fatal: the
// loader cannot continue without data.
func Decode(blob []byte) (*Database, error) {
	r, err := zstd.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, errors.Wrap(err, "xraydb: opening zstd stream")
	}
	defer r.Close()

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "xraydb: decompressing embedded artifact")
	}

	var db Database
	if err := json.Unmarshal(payload, &db); err != nil {
		return nil, errors.Wrap(err, "xraydb: decoding embedded artifact")
	}
	if db.SchemaVersion != CurrentSchemaVersion {
		return nil, errors.Errorf("xraydb: embedded artifact schema version %d does not match reader version %d",
			db.SchemaVersion, CurrentSchemaVersion)
	}
	return &db, nil
}
