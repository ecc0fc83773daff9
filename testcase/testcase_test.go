package testcase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lantern/feasibility"
	"github.com/katalvlaran/lantern/instance"
	"github.com/katalvlaran/lantern/radius"
	"github.com/katalvlaran/lantern/testcase"
)

// solveSuite checks every case of a suite with known answers against the
// dynamic program and, where it is small enough, against brute force.
func solveSuite(t *testing.T, cases []testcase.Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			in := c.Instance()
			require.NoError(t, instance.Validate(in, instance.DefaultLimits()))

			got, err := radius.Minimal(in, feasibility.BurstDP)
			require.NoError(t, err)
			if c.Want != testcase.Unknown {
				assert.Equal(t, c.Want, got, "burstdp")
			}
			assert.NoError(t, testcase.CheckAnswer(in, got))

			if in.M() <= feasibility.BruteLimit {
				brute, err := radius.Minimal(in, feasibility.Brute)
				require.NoError(t, err)
				assert.Equal(t, got, brute, "brute")
			}
		})
	}
}

// TestSmall_KnownAnswers verifies the hand-written suite.
func TestSmall_KnownAnswers(t *testing.T) {
	cases := testcase.Small()
	require.Len(t, cases, 10)
	solveSuite(t, cases)
}

// TestEdge_KnownAnswers verifies the boundary suite, including the two
// 100000-element stress cases.
func TestEdge_KnownAnswers(t *testing.T) {
	cases := testcase.Edge()
	require.Len(t, cases, 15)
	if testing.Short() {
		var small []testcase.Case
		for _, c := range cases {
			if c.Instance().N() <= 1000 {
				small = append(small, c)
			}
		}
		cases = small
	}
	solveSuite(t, cases)
}

// TestLarge_KnownAnswers runs the 100000 × 100000 suite.
func TestLarge_KnownAnswers(t *testing.T) {
	if testing.Short() {
		t.Skip("large suite skipped in -short mode")
	}
	cases := testcase.Large()
	require.Len(t, cases, 10)
	solveSuite(t, cases)
}

// TestLarge_ShapesAreValid builds each large instance and validates it
// without solving.
func TestLarge_ShapesAreValid(t *testing.T) {
	for _, c := range testcase.Large() {
		in := c.Instance()
		assert.Equal(t, 100_000, in.N(), c.Name)
		assert.Equal(t, 100_000, in.M(), c.Name)
		assert.NoError(t, instance.Validate(in, instance.DefaultLimits()), c.Name)
	}
}

// TestSuites_UniqueNames verifies case names are unique within each suite.
func TestSuites_UniqueNames(t *testing.T) {
	for _, name := range []string{"small", "edge", "large"} {
		cases, err := testcase.BySuite(name, 0, 0)
		require.NoError(t, err)
		seen := make(map[string]bool, len(cases))
		for _, c := range cases {
			assert.False(t, seen[c.Name], "%s: duplicate %q", name, c.Name)
			seen[c.Name] = true
		}
	}
}

// TestBySuite_Unknown rejects unsupported names.
func TestBySuite_Unknown(t *testing.T) {
	_, err := testcase.BySuite("huge", 0, 0)
	assert.ErrorIs(t, err, testcase.ErrUnknownSuite)
}

// TestBySuite_RandomDeterministic verifies the same seed gives the same cases.
func TestBySuite_RandomDeterministic(t *testing.T) {
	a, err := testcase.BySuite("random", 20, 7)
	require.NoError(t, err)
	b, err := testcase.BySuite("random", 20, 7)
	require.NoError(t, err)
	require.Len(t, a, 20)
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].Instance(), b[i].Instance())
		assert.Equal(t, testcase.Unknown, a[i].Want)
	}

	c, err := testcase.BySuite("random", 20, 8)
	require.NoError(t, err)
	differs := false
	for i := range a {
		if !assert.ObjectsAreEqual(a[i].Instance(), c[i].Instance()) {
			differs = true

			break
		}
	}
	assert.True(t, differs, "different seeds should give different instances")
}

// TestRandom_RespectsBounds verifies the shape of generated instances.
func TestRandom_RespectsBounds(t *testing.T) {
	b := testcase.Bounds{MaxOutposts: 5, MaxLanterns: 4, CoordSpan: 10}
	lim := instance.Limits{MaxOutposts: 5, MaxLanterns: 4, MaxBursts: 4, MinCoord: -10, MaxCoord: 10}
	rng := testcase.NewRNG(42)
	for range 500 {
		in := testcase.Random(rng, b)
		require.NoError(t, instance.Validate(in, lim))
		assert.LessOrEqual(t, in.MaxBursts, in.MaxEffort)
	}
}

// TestStreamRNG_Independent verifies streams are reproducible and distinct.
func TestStreamRNG_Independent(t *testing.T) {
	assert.Equal(t, testcase.StreamRNG(5, 3).Int63(), testcase.StreamRNG(5, 3).Int63())
	assert.NotEqual(t, testcase.StreamRNG(5, 3).Int63(), testcase.StreamRNG(5, 4).Int63())
	assert.Equal(t, testcase.StreamRNG(0, 1).Int63(), testcase.StreamRNG(1, 1).Int63())
}

// TestDeriveRNG_Streams verifies derivation consumes the base once and
// falls back to the default parent for a nil base.
func TestDeriveRNG_Streams(t *testing.T) {
	a, b := testcase.NewRNG(11), testcase.NewRNG(11)
	assert.Equal(t, testcase.DeriveRNG(a, 2).Int63(), testcase.DeriveRNG(b, 2).Int63())
	// Second derivation with the same id draws a new parent from the base.
	assert.NotEqual(t, testcase.DeriveRNG(testcase.NewRNG(11), 2).Int63(), testcase.DeriveRNG(a, 2).Int63())

	assert.Equal(t, testcase.DeriveRNG(nil, 5).Int63(), testcase.DeriveRNG(nil, 5).Int63())
}

// TestCheckAnswer covers the judge-side sanity checks.
func TestCheckAnswer(t *testing.T) {
	in := instance.Instance{
		Outposts:  []int64{-3, 3},
		Lanterns:  []int64{0, 10},
		MaxEffort: 1,
		MaxBursts: 1,
	}
	assert.NoError(t, testcase.CheckAnswer(in, 0))
	assert.NoError(t, testcase.CheckAnswer(in, 3))
	assert.ErrorIs(t, testcase.CheckAnswer(in, -1), testcase.ErrNegativeAnswer)
	assert.ErrorIs(t, testcase.CheckAnswer(in, 4), testcase.ErrAnswerTooLarge)

	empty := instance.Instance{Lanterns: []int64{1}, MaxEffort: 1, MaxBursts: 1}
	assert.NoError(t, testcase.CheckAnswer(empty, 0))
	assert.ErrorIs(t, testcase.CheckAnswer(empty, 1), testcase.ErrAnswerTooLarge)
}

// TestCase_Verify compares against recorded answers.
func TestCase_Verify(t *testing.T) {
	c := testcase.Small()[1] // far-apart, answer 10
	require.Equal(t, int64(10), c.Want)
	assert.NoError(t, c.Verify(10))

	err := c.Verify(9)
	assert.True(t, errors.Is(err, testcase.ErrWrongAnswer))
	assert.Contains(t, err.Error(), c.Name)
}

// TestParseAnswer accepts exactly one integer line.
func TestParseAnswer(t *testing.T) {
	for _, in := range []string{"7", "7\n", "7\r\n", "+7", "-7\n"} {
		got, err := testcase.ParseAnswer(in)
		require.NoError(t, err, "%q", in)
		assert.Equal(t, int64(7), max(got, -got), "%q", in)
	}
	for _, in := range []string{"", "\n", "7\n\n", " 7", "7 ", "7\n8", "seven", "7.0"} {
		_, err := testcase.ParseAnswer(in)
		assert.ErrorIs(t, err, testcase.ErrMalformedAnswer, "%q", in)
	}
}
