// Package payroll computes team payrolls from player contracts.
package payroll

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/singleflight"
)

// Contract is a salary commitment counted against a team's payroll, in
// thousands of dollars per season. Released contracts are dead money still
// owed to a player no longer on the roster.
type Contract struct {
	Pid      int     `json:"pid" msgpack:"pid"`
	Tid      int     `json:"tid" msgpack:"tid"`
	Amount   float64 `json:"amount" msgpack:"amount"`
	Exp      int     `json:"exp" msgpack:"exp"`
	Released bool    `json:"released" msgpack:"released"`
}

// Source lists the contracts, active and released, counted against tid.
type Source interface {
	Contracts(ctx context.Context, tid int) ([]Contract, error)
}

// defaultTimeout bounds a shared payroll computation.
const defaultTimeout = 30 * time.Second

type Service struct {
	Source Source

	// Timeout bounds the computation shared by concurrent callers, which runs
	// detached from any single caller's context.
	Timeout time.Duration

	group singleflight.Group
}

func NewService(source Source) *Service {
	return &Service{Source: source, Timeout: defaultTimeout}
}

// Payroll returns the sum of every contract counted against tid. Concurrent
// calls for the same team share one computation; a caller whose ctx ends
// stops waiting without failing the others.
func (s *Service) Payroll(ctx context.Context, tid int) (float64, error) {
	ch := s.group.DoChan(strconv.Itoa(tid), func() (interface{}, error) {
		shared, cancel := context.WithTimeout(context.Background(), s.timeout())
		defer cancel()

		contracts, err := s.Source.Contracts(shared, tid)
		if err != nil {
			return nil, errors.Wrap(err, "payroll: list contracts")
		}
		return Sum(contracts), nil
	})

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return 0, res.Err
		}
		return res.Val.(float64), nil
	}
}

func (s *Service) timeout() time.Duration {
	if s.Timeout <= 0 {
		return defaultTimeout
	}
	return s.Timeout
}

// Sum adds up contract amounts.
func Sum(contracts []Contract) float64 {
	return lo.SumBy(contracts, func(c Contract) float64 {
		return c.Amount
	})
}
