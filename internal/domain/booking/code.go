package booking

import (
	"fmt"
	"math/rand/v2"
)

const maxTransactionNumber = 100000

type CodeGenerator interface {
	Next() string
}

type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

func (RandomCodeGenerator) Next() string {
	return fmt.Sprintf("#PM%d", rand.IntN(maxTransactionNumber))
}
