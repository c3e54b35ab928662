package util

import (
	"math/rand"
	"strings"
	"time"

	"github.com/lucasepe/codename"
	"github.com/pkg/errors"
)

var ErrNoNames = errors.New("name list is empty")

func NewRand() *rand.Rand {
	source := rand.NewSource(time.Now().UnixNano())
	return rand.New(source)
}

// GenerateNames picks a random first name and last name from the given lists.
func GenerateNames(rng *rand.Rand, firstNames, lastNames []string) (firstName string, lastName string, err error) {
	if len(firstNames) == 0 || len(lastNames) == 0 {
		return "", "", ErrNoNames
	}

	firstName = firstNames[rng.Intn(len(firstNames))]
	lastName = lastNames[rng.Intn(len(lastNames))]

	return firstName, lastName, nil
}

// GenerateTempFileName returns a hidden, random file name used while a file
// is being written next to its final destination.
func GenerateTempFileName() (string, error) {
	rng, err := codename.DefaultRNG()
	if err != nil {
		return "", errors.Wrap(err, "failed to seed codename generator")
	}
	name := codename.Generate(rng, 4)
	return "." + strings.ReplaceAll(name, "-", "") + ".tmp", nil
}
