package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"garantias_service/internal/usecase/interfaces"
)

// ScanNumberGenerator derives the next "<PREFIX>-<year>-NNNN" number by
// reading the greatest persisted number for the year and incrementing its
// trailing segment; the first number of a year is 0001.
//
// The read and the subsequent insert are two independent store operations,
// so two concurrent creations in the same year can obtain the same number.
// This mirrors the behavior the collection already exhibits; switch to
// CounterNumberGenerator (SEQUENCE_MODE=atomic) when that matters.

type ScanNumberGenerator struct {
	source interfaces.ISequenceSource
	prefix string
}

var _ interfaces.INumberGenerator = (*ScanNumberGenerator)(nil)

func NewScanNumberGenerator(source interfaces.ISequenceSource, prefix string) *ScanNumberGenerator {
	return &ScanNumberGenerator{source: source, prefix: prefix}
}

func (g *ScanNumberGenerator) Next(ctx context.Context, year int) (string, error) {
	prefix := fmt.Sprintf("%s-%d-", g.prefix, year)

	last, err := g.source.LastNumberWithPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	next := 1
	if last != "" {
		n, err := parseSequence(last)
		if err != nil {
			return "", err
		}
		next = n + 1
	}
	return fmt.Sprintf("%s%04d", prefix, next), nil
}

func parseSequence(number string) (int, error) {
	i := strings.LastIndex(number, "-")
	if i < 0 || i == len(number)-1 {
		return 0, fmt.Errorf("malformed sequence number %q", number)
	}
	n, err := strconv.Atoi(number[i+1:])
	if err != nil {
		return 0, fmt.Errorf("malformed sequence number %q: %w", number, err)
	}
	return n, nil
}
