package controller_test

import (
	"testing"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/controller/testsuite"
	"github.com/stretchr/testify/require"
)

func TestStore_InMem(t *testing.T) {
	s := controller.InMemStore()
	testsuite.Suite(t, s, func() {})
}

func TestStore_Instrumented(t *testing.T) {
	s := controller.InstrumentStore(controller.InMemStore())
	testsuite.Suite(t, s, func() {})
}

func TestFrameWindow(t *testing.T) {
	tests := []struct {
		N, Limit, Offset int
		Start, End       int
	}{
		{N: 0, Limit: 10, Offset: 0, Start: 0, End: 0},
		{N: 5, Limit: 10, Offset: 0, Start: 0, End: 5},
		{N: 5, Limit: 2, Offset: 1, Start: 1, End: 3},
		{N: 5, Limit: 1, Offset: -1, Start: 4, End: 5},
		{N: 5, Limit: 10, Offset: -10, Start: 0, End: 5},
		{N: 5, Limit: 1, Offset: 5, Start: 0, End: 0},
		{N: 5, Limit: 0, Offset: 0, Start: 0, End: 0},
	}
	for _, test := range tests {
		start, end := controller.FrameWindow(test.N, test.Limit, test.Offset)
		require.Equal(t, test.Start, start, "%+v", test)
		require.Equal(t, test.End, end, "%+v", test)
	}
}
