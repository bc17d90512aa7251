package procedure_test

import (
	"testing"

	"github.com/on-the-ground/procedure_ive_go/procedure"
)

// Benchmarks compare the erased invocation against the bare-handed
// equivalents: a direct call and a stored func value.

func addUp(n int) int { return n + 1 }

var sink int

func BenchmarkDirectCall(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = addUp(i)
	}
}

func BenchmarkStoredFuncValue(b *testing.B) {
	stored := addUp
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = stored(i)
	}
}

func BenchmarkErasedInvoke(b *testing.B) {
	p := procedure.Procure(addUp)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = p.Invoke(i)
	}
}

func BenchmarkComparablyErasedInvoke(b *testing.B) {
	p := procedure.ProcureComparably(addUp)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = p.Invoke(i)
	}
}

func BenchmarkErasedMethodInvoke(b *testing.B) {
	acct := &Account{}
	p := procedure.MustProcureMethod(acct, (*Account).Deposit, procedure.Of[int, int]())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = p.Invoke(1)
	}
}

func BenchmarkEquals(b *testing.B) {
	p := procedure.ProcureComparably(addUp)
	q := procedure.ProcureComparably(addUp)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !p.Equals(q) {
			b.Fatal("expected equal adapters")
		}
	}
}
