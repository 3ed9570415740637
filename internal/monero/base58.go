package monero

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

const (
	checksumLen          = 4
	fullBlockSize        = 8
	fullEncodedBlockSize = 11
)

// encodedBlockSizes[n] is the encoded width of an n byte block.
var encodedBlockSizes = []int{0, 2, 3, 5, 6, 7, 9, 10, 11}

// encodeBase58 uses Monero's block scheme: 8 byte blocks are encoded
// independently into fixed width groups, left padded with the zero digit.
func encodeBase58(data []byte) string {
	var sb strings.Builder
	for start := 0; start < len(data); start += fullBlockSize {
		end := min(start+fullBlockSize, len(data))
		block := data[start:end]
		digits := base58.Encode(block)
		width := encodedBlockSizes[len(block)]
		sb.WriteString(strings.Repeat("1", width-len(digits)))
		sb.WriteString(digits)
	}
	return sb.String()
}

func decodeBase58(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)*fullBlockSize/fullEncodedBlockSize+fullBlockSize)
	for start := 0; start < len(s); start += fullEncodedBlockSize {
		end := min(start+fullEncodedBlockSize, len(s))
		group := s[start:end]
		size := -1
		for n, w := range encodedBlockSizes {
			if w == len(group) {
				size = n
			}
		}
		if size < 0 {
			return nil, fmt.Errorf("invalid base58 group length %d", len(group))
		}

		block := make([]byte, size)
		if digits := strings.TrimLeft(group, "1"); digits != "" {
			value, err := base58.Decode(digits)
			if err != nil {
				return nil, fmt.Errorf("invalid base58: %w", err)
			}
			if len(value) > size {
				return nil, fmt.Errorf("base58 group %q overflows %d bytes", group, size)
			}
			copy(block[size-len(value):], value)
		}
		out = append(out, block...)
	}
	return out, nil
}
