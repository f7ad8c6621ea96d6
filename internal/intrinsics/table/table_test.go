package table

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		wantErr error
		wantLen int
	}{
		{
			name:    "empty table",
			names:   nil,
			wantLen: 0,
		},
		{
			name:    "sentinel only",
			names:   []string{Sentinel},
			wantLen: 1,
		},
		{
			name:    "sentinel plus intrinsics",
			names:   []string{Sentinel, "llvm.x86.avx2.add", "llvm.x86.sse.add"},
			wantLen: 3,
		},
		{
			name:    "missing sentinel",
			names:   []string{"llvm.x86.avx2.add", Sentinel},
			wantErr: ErrMissingSentinel,
		},
		{
			name:    "empty name",
			names:   []string{Sentinel, "llvm.abs", ""},
			wantErr: ErrEmptyName,
		},
		{
			name:    "duplicate name",
			names:   []string{Sentinel, "llvm.abs", "llvm.fabs", "llvm.abs"},
			wantErr: ErrDuplicateName,
		},
		{
			name:    "sentinel repeated",
			names:   []string{Sentinel, Sentinel},
			wantErr: ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := New(tt.names)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tbl)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, tbl.Len())
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	names := []string{Sentinel, "llvm.x86.avx2.add"}
	tbl, err := New(names)
	require.NoError(t, err)

	names[1] = "llvm.x86.sse.add"

	assert.Equal(t, []string{Sentinel, "llvm.x86.avx2.add"}, slices.Collect(tbl.Names()))
}

func TestNames(t *testing.T) {
	want := []string{Sentinel, "llvm.abs", "llvm.x86.avx2.psad.bw"}
	tbl, err := New(want)
	require.NoError(t, err)

	assert.Equal(t, want, slices.Collect(tbl.Names()))
	// Ranging again yields the same sequence.
	assert.Equal(t, want, slices.Collect(tbl.Names()))
}

func TestNilTable(t *testing.T) {
	var tbl *Table

	assert.Zero(t, tbl.Len())
	assert.Empty(t, slices.Collect(tbl.Names()))
}

func TestNames_EarlyBreak(t *testing.T) {
	tbl, err := New([]string{Sentinel, "a", "b", "c"})
	require.NoError(t, err)

	var got []string
	for name := range tbl.Names() {
		got = append(got, name)
		if name == "a" {
			break
		}
	}
	assert.Equal(t, []string{Sentinel, "a"}, got)
}

func TestDefault(t *testing.T) {
	_, err := New(generatedNames)
	require.NoError(t, err, "generated names must satisfy the table invariants")

	tbl := Default()
	require.Equal(t, len(generatedNames), tbl.Len())

	names := slices.Collect(tbl.Names())
	assert.Equal(t, Sentinel, names[0])

	hasAVX2 := false
	for name := range tbl.Names() {
		if strings.HasPrefix(name, "llvm.x86.avx2") {
			hasAVX2 = true
			break
		}
	}
	assert.True(t, hasAVX2, "default table should contain AVX2 intrinsics")
}
