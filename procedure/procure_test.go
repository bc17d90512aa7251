package procedure_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/procedure_ive_go/procedure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func double(n int) int { return n * 2 }

func triple(n int) int { return n * 3 }

type Account struct {
	balance int
}

func (a *Account) Deposit(amount int) int {
	a.balance += amount
	return a.balance
}

func (a *Account) Withdraw(amount int) int {
	a.balance -= amount
	return a.balance
}

// Doubler is a call-operator object: its type carries one distinguished Call
// method.
type Doubler struct {
	calls int
}

func (d *Doubler) Call(n int) int {
	d.calls++
	return n * 2
}

func TestProcure_ForwardsFunction(t *testing.T) {
	p := procedure.Procure(double)
	if got := p.Invoke(7); got != 14 {
		t.Fatalf("expected 14, got %d", got)
	}
}

func TestProcure_ForwardsClosure(t *testing.T) {
	total := 0
	accumulate := func(n int) int {
		total += n
		return total
	}
	p := procedure.Procure(accumulate)
	p.Invoke(3)
	got := p.Invoke(4)
	assert.Equal(t, 7, got)
	assert.Equal(t, 7, total, "closure must mutate its captured state, not a copy")
}

func TestProcureVia_ForwardsCallOperator(t *testing.T) {
	d := &Doubler{}
	p := procedure.ProcureVia(d, procedure.Of[int, int]())
	assert.Equal(t, 10, p.Invoke(5))
	assert.Equal(t, 1, d.calls, "invocation must reach the borrowed object")
}

func TestProcureMethod_ForwardsBoundMethod(t *testing.T) {
	acct := &Account{balance: 100}
	p, err := procedure.ProcureMethod(acct, (*Account).Deposit, procedure.Of[int, int]())
	require.NoError(t, err)
	assert.Equal(t, 125, p.Invoke(25))
	assert.Equal(t, 125, acct.balance)
}

func TestProcureNamed_ForwardsResolvedMethod(t *testing.T) {
	acct := &Account{balance: 100}
	p, err := procedure.ProcureNamed(acct, "Withdraw", procedure.Of[int, int]())
	require.NoError(t, err)
	assert.Equal(t, 60, p.Invoke(40))
}

func TestProcureMethod_NilDescriptor(t *testing.T) {
	acct := &Account{}
	_, err := procedure.ProcureMethod[Account, int, int](acct, nil, procedure.Of[int, int]())
	require.Error(t, err)
	assert.True(t, errors.Is(err, procedure.ErrInvalidMethodDescriptor))

	_, err = procedure.ProcureMethodComparably[Account, int, int](acct, nil, procedure.Of[int, int]())
	assert.True(t, errors.Is(err, procedure.ErrInvalidMethodDescriptor))
}

func TestProcureNamed_UnknownName(t *testing.T) {
	acct := &Account{}
	_, err := procedure.ProcureNamed(acct, "Transfer", procedure.Of[int, int]())
	require.Error(t, err)
	assert.True(t, errors.Is(err, procedure.ErrInvalidMethodDescriptor))
}

func TestProcureNamed_ShapeMismatch(t *testing.T) {
	acct := &Account{}
	_, err := procedure.ProcureNamed(acct, "Deposit", procedure.Of[string, string]())
	require.Error(t, err)
	assert.True(t, errors.Is(err, procedure.ErrInvalidMethodDescriptor))
}

func TestProcureNamed_WithoutTypeChecks(t *testing.T) {
	procedure.Configure(procedure.WithoutTypeChecks())
	defer procedure.Configure()

	acct := &Account{balance: 10}

	// An exactly matching shape still takes the typed path.
	p, err := procedure.ProcureNamed(acct, "Deposit", procedure.Of[int, int]())
	require.NoError(t, err)
	assert.Equal(t, 15, p.Invoke(5))

	// A mismatched shape constructs without error; the misuse surfaces on
	// invocation instead.
	q, err := procedure.ProcureNamed(acct, "Deposit", procedure.Of[int8, int8]())
	require.NoError(t, err)
	assert.Panics(t, func() { q.Invoke(1) })
}

func TestProcureMethod_WithoutRaising(t *testing.T) {
	procedure.Configure(procedure.WithoutRaising())
	defer procedure.Configure()

	// Validation is skipped: the invalid descriptor is now an unchecked
	// precondition, so the construction itself must not fail. The invalid
	// adapter is deliberately not invoked.
	acct := &Account{}
	p, err := procedure.ProcureMethod[Account, int, int](acct, nil, procedure.Of[int, int]())
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestMustProcureNamed_PanicsOnUnknown(t *testing.T) {
	acct := &Account{}
	assert.Panics(t, func() {
		procedure.MustProcureNamed(acct, "Transfer", procedure.Of[int, int]())
	})
}

func TestProcure0_ForwardsNiladic(t *testing.T) {
	count := 0
	p := procedure.Procure0(func() int {
		count++
		return count
	})
	p.Invoke(procedure.Unit{})
	assert.Equal(t, 2, p.Invoke(procedure.Unit{}))
}

func TestProcure2_ForwardsPair(t *testing.T) {
	p := procedure.Procure2(func(a int, b string) string {
		if a > 0 {
			return b
		}
		return ""
	})
	assert.Equal(t, "yes", p.Invoke(procedure.PairOf(1, "yes")))
	assert.Equal(t, "", p.Invoke(procedure.PairOf(-1, "yes")))
}
