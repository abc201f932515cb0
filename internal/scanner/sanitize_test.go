package scanner_test

import (
	"fmt"
	"testing"

	"github.com/robgonnella/netscope/internal/exception"
	"github.com/robgonnella/netscope/internal/probe"
	"github.com/robgonnella/netscope/internal/scanner"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int {
	return &i
}

func TestSanitize(t *testing.T) {
	t.Run("trims and drops blank targets", func(st *testing.T) {
		jobs, timeout, err := scanner.Sanitize(
			[]string{"127.0.0.1", "", "  ", "10.255.255.1"},
			intPtr(500),
		)

		assert.NoError(st, err)
		assert.Equal(st, 500, timeout)
		assert.Equal(st, []probe.Job{
			{Index: 0, Target: "127.0.0.1"},
			{Index: 1, Target: "10.255.255.1"},
		}, jobs)
	})

	t.Run("truncates to 128 targets without deduplicating", func(st *testing.T) {
		raw := []string{}

		for i := 0; i < 130; i++ {
			switch {
			case i%10 == 0:
				raw = append(raw, "   ")
			case i%7 == 0:
				raw = append(raw, "dup.example.com")
			default:
				raw = append(raw, fmt.Sprintf(" 10.0.0.%d ", i))
			}
		}

		raw = append(raw, "10.0.1.1", "10.0.1.2", "10.0.1.3", "10.0.1.4",
			"10.0.1.5", "10.0.1.6", "10.0.1.7", "10.0.1.8", "10.0.1.9",
			"10.0.1.10", "10.0.1.11", "10.0.1.12", "10.0.1.13", "10.0.1.14")

		jobs, _, err := scanner.Sanitize(raw, nil)

		assert.NoError(st, err)
		assert.Equal(st, scanner.MaxTargets, len(jobs))

		dups := 0

		for i, j := range jobs {
			assert.Equal(st, i, j.Index)
			assert.NotEmpty(st, j.Target)

			if j.Target == "dup.example.com" {
				dups++
			}
		}

		assert.Greater(st, dups, 1)
		assert.Equal(st, "10.0.0.1", jobs[0].Target)
	})

	t.Run("returns invalid input for empty target list", func(st *testing.T) {
		jobs, _, err := scanner.Sanitize([]string{}, nil)

		assert.Nil(st, jobs)
		assert.ErrorIs(st, err, exception.ErrInvalidInput)
	})

	t.Run("returns invalid input for whitespace only targets", func(st *testing.T) {
		_, _, err := scanner.Sanitize([]string{" ", "\t", "\n"}, nil)

		assert.ErrorIs(st, err, exception.ErrInvalidInput)
	})

	t.Run("clamps timeout", func(st *testing.T) {
		assert.Equal(st, 200, scanner.EffectiveTimeout(intPtr(50)))
		assert.Equal(st, 10000, scanner.EffectiveTimeout(intPtr(20000)))
		assert.Equal(st, 1200, scanner.EffectiveTimeout(nil))
		assert.Equal(st, 750, scanner.EffectiveTimeout(intPtr(750)))
		assert.Equal(st, 200, scanner.EffectiveTimeout(intPtr(200)))
		assert.Equal(st, 10000, scanner.EffectiveTimeout(intPtr(10000)))
	})
}
