package behavior

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Decode parses a behaviors document in either of the two wire forms and
// returns the canonical matrix. A JSON array is read as a bundle list and
// projected through MatrixFromBundles; a JSON object is read as a matrix
// directly. The two forms are discriminated on the first non-space byte,
// mirroring how a saved behaviors file is imported: an empty array and an
// empty object both yield an empty matrix, via their respective paths.
func Decode(data []byte) (Matrix, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("behavior: empty document")
	}
	switch trimmed[0] {
	case '[':
		var bundles []Bundle
		if err := json.Unmarshal(trimmed, &bundles); err != nil {
			return nil, fmt.Errorf("behavior: decoding bundle list: %w", err)
		}
		return MatrixFromBundles(bundles), nil
	case '{':
		var m Matrix
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return nil, fmt.Errorf("behavior: decoding matrix: %w", err)
		}
		if m == nil {
			m = make(Matrix)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("behavior: document is neither a matrix object nor a bundle array")
	}
}
