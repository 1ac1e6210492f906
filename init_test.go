package bignum

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations = fuzzDefaultIterations
	fuzzOpsActive  = allFuzzOps
	fuzzSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList

	flag.IntVar(&fuzzIterations, "bignum.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "bignum.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "bignum.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)

	code := m.Run()
	os.Exit(code)
}

func accFromBigInt(b *big.Int) BigNum {
	n, err := FromBigInt(b)
	if err != nil {
		panic(fmt.Errorf("bignum: inaccurate conversion to BigNum in fuzz tester for %s: %v", b, err))
	}
	return n
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomBig returns a random integer with between 0 and maxLimbs limbs, with
// an even distribution of limb counts.
func randomBig(rng *rand.Rand, maxLimbs int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	v := new(big.Int)
	limbs := rng.Intn(maxLimbs + 1)
	for i := 0; i < limbs; i++ {
		l := int64(rng.Intn(Radix))
		if i == 0 && l == 0 {
			l = 1 // keep the limb count honest
		}
		v.Mul(v, bigRadix)
		v.Add(v, big.NewInt(l))
	}
	if rng.Intn(2) == 1 {
		v.Neg(v)
	}
	return v
}

// simulateOverflow reports whether b cannot be represented in Cap limbs.
func simulateOverflow(b *big.Int) bool {
	return new(big.Int).Abs(b).Cmp(maxBigMagnitude) > 0
}
