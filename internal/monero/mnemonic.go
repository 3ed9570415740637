package monero

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"math"
	"os"
	"strings"
	"unicode/utf8"
)

// WordlistSize is the number of words in every seed language list.
const WordlistSize = 1626

const (
	seedWords     = 24
	checksumWords = 1
)

var (
	ErrUnknownWord     = errors.New("word not in wordlist")
	ErrInvalidChecksum = errors.New("invalid seed checksum")
	ErrWordCount       = errors.New("invalid seed word count")
)

// Wordlist maps seed words to indices for one language.
type Wordlist struct {
	words     []string
	prefixLen int
	byWord    map[string]int
	byPrefix  map[string]int
}

// NewWordlist validates words and builds the lookup tables. Every word must be
// unique by its first prefixLen characters.
func NewWordlist(words []string, prefixLen int) (*Wordlist, error) {
	if len(words) != WordlistSize {
		return nil, fmt.Errorf("wordlist must have %d words, got %d", WordlistSize, len(words))
	}
	if prefixLen < 1 {
		return nil, fmt.Errorf("invalid prefix length %d", prefixLen)
	}
	wl := &Wordlist{
		words:     append([]string(nil), words...),
		prefixLen: prefixLen,
		byWord:    make(map[string]int, len(words)),
		byPrefix:  make(map[string]int, len(words)),
	}
	for i, w := range wl.words {
		if _, dup := wl.byWord[w]; dup {
			return nil, fmt.Errorf("duplicate word %q", w)
		}
		p := wl.prefix(w)
		if other, dup := wl.byPrefix[p]; dup {
			return nil, fmt.Errorf("words %q and %q share prefix %q", wl.words[other], w, p)
		}
		wl.byWord[w] = i
		wl.byPrefix[p] = i
	}
	return wl, nil
}

// LoadWordlist reads a wordlist file with one word per line.
func LoadWordlist(path string, prefixLen int) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wordlist: %w", err)
	}
	return NewWordlist(words, prefixLen)
}

func (wl *Wordlist) prefix(w string) string {
	if utf8.RuneCountInString(w) <= wl.prefixLen {
		return w
	}
	return string([]rune(w)[:wl.prefixLen])
}

func (wl *Wordlist) index(w string) (int, error) {
	if i, ok := wl.byWord[w]; ok {
		return i, nil
	}
	if i, ok := wl.byPrefix[wl.prefix(w)]; ok {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWord, w)
}

func (wl *Wordlist) checksumIndex(words []string) int {
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(wl.prefix(w))
	}
	return int(crc32.ChecksumIEEE([]byte(sb.String())) % uint32(len(words)))
}

// Encode turns a 32 byte seed into 24 words plus a checksum word.
func (wl *Wordlist) Encode(seed []byte) ([]string, error) {
	if len(seed) != keyLen {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", keyLen, len(seed))
	}
	n := uint32(WordlistSize)
	out := make([]string, 0, seedWords+checksumWords)
	for i := 0; i < len(seed); i += 4 {
		x := binary.LittleEndian.Uint32(seed[i : i+4])
		w1 := x % n
		w2 := (x/n + w1) % n
		w3 := (x/n/n + w2) % n
		out = append(out, wl.words[w1], wl.words[w2], wl.words[w3])
	}
	return append(out, out[wl.checksumIndex(out)]), nil
}

// Decode reverses Encode. A 25th word is checked against the checksum.
func (wl *Wordlist) Decode(words []string) ([]byte, error) {
	switch len(words) {
	case seedWords:
	case seedWords + checksumWords:
		body := words[:seedWords]
		want := wl.prefix(body[wl.checksumIndex(body)])
		if wl.prefix(words[seedWords]) != want {
			return nil, ErrInvalidChecksum
		}
		words = body
	default:
		return nil, fmt.Errorf("%w: %d", ErrWordCount, len(words))
	}

	n := uint64(WordlistSize)
	seed := make([]byte, 0, keyLen)
	for i := 0; i < len(words); i += 3 {
		var idx [3]uint64
		for j := range idx {
			k, err := wl.index(words[i+j])
			if err != nil {
				return nil, err
			}
			idx[j] = uint64(k)
		}
		x := idx[0] + n*((n-idx[0]+idx[1])%n) + n*n*((n-idx[1]+idx[2])%n)
		if x%n != idx[0] || x > math.MaxUint32 {
			return nil, fmt.Errorf("%w: words %d-%d do not form a valid group", ErrUnknownWord, i+1, i+3)
		}
		seed = binary.LittleEndian.AppendUint32(seed, uint32(x))
	}
	return seed, nil
}
