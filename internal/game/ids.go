package game

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
	"strconv"
	"time"
)

// CodeAlphabet excludes visually confusable characters (0/O, 1/I/L) so codes
// survive being read aloud or typed from a QR scan.
const CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewSessionCode generates a random join code of the given length. Uniqueness
// is the caller's problem; the store enforces it and the caller retries.
func NewSessionCode(length int) string {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(CodeAlphabet))))
		if err != nil {
			code[i] = CodeAlphabet[mrand.Intn(len(CodeAlphabet))]
			continue
		}
		code[i] = CodeAlphabet[n.Int64()]
	}
	return string(code)
}

// NewPlayerID builds a collision-resistant player token from the current
// time and a random base36 tail. Generated client side and trusted by the
// store.
func NewPlayerID() string {
	tail := strconv.FormatInt(mrand.Int63(), 36)
	if len(tail) > 7 {
		tail = tail[:7]
	}
	return fmt.Sprintf("player_%d_%s", time.Now().UnixMilli(), tail)
}
