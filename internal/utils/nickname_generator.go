package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var adjectives = []string{
	"Vigilant", "Sharp", "Keen", "Patient", "Relentless",
	"Quiet", "Wary", "Honest", "Steady", "Candid",
	"Subtle", "Exact", "Lucid", "Forensic", "Veiled",
	"Prime", "True", "Deep", "Grainy", "Synthetic",
}

var nouns = []string{
	"Hunter", "Sleuth", "Verifier", "Witness", "Arbiter",
	"Scout", "Analyst", "Examiner", "Decoder", "Seeker",
	"Auditor", "Spotter", "Tracker", "Curator", "Skeptic",
	"Appraiser", "Observer", "Inspector", "Referee", "Sentinel",
}

// GenerateNickname creates a random nickname in the format "Adjective_Noun_XXXX"
// where XXXX is a random 4-digit number
func GenerateNickname() (string, error) {
	// Pick random adjective
	adjIdx, err := rand.Int(rand.Reader, big.NewInt(int64(len(adjectives))))
	if err != nil {
		return "", fmt.Errorf("failed to generate random adjective: %w", err)
	}

	// Pick random noun
	nounIdx, err := rand.Int(rand.Reader, big.NewInt(int64(len(nouns))))
	if err != nil {
		return "", fmt.Errorf("failed to generate random noun: %w", err)
	}

	// Generate random 4-digit suffix
	suffix, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random suffix: %w", err)
	}

	nickname := fmt.Sprintf("%s_%s_%04d",
		adjectives[adjIdx.Int64()],
		nouns[nounIdx.Int64()],
		suffix.Int64(),
	)

	return nickname, nil
}
