package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		list StringList
	}{
		{"empty", StringList{}},
		{"single", StringList{"finance"}},
		{"multiple", StringList{"finance", "self-help", "business"}},
		{"preserves order", StringList{"z", "a", "m"}},
		{"special characters", StringList{`quo"ted`, "comma,separated", "uni©ode"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := tt.list.Value()
			require.NoError(t, err)

			var decoded StringList
			err = decoded.Scan(encoded)
			require.NoError(t, err)

			assert.Equal(t, tt.list, decoded)
		})
	}
}

func TestStringList_EncodesEmptyAsArrayLiteral(t *testing.T) {
	encoded, err := StringList{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)
}

func TestStringList_NilEncodesAsArrayLiteral(t *testing.T) {
	var list StringList
	encoded, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)
}

func TestStringList_ScanNull(t *testing.T) {
	var list StringList
	err := list.Scan(nil)
	require.NoError(t, err)
	assert.Equal(t, StringList{}, list)
}

func TestStringList_ScanEmptyString(t *testing.T) {
	var list StringList
	err := list.Scan("")
	require.NoError(t, err)
	assert.Equal(t, StringList{}, list)
}

func TestStringList_ScanBytes(t *testing.T) {
	var list StringList
	err := list.Scan([]byte(`["a","b"]`))
	require.NoError(t, err)
	assert.Equal(t, StringList{"a", "b"}, list)
}

func TestStringList_ScanInvalidType(t *testing.T) {
	var list StringList
	err := list.Scan(42)
	assert.Error(t, err)
}

func TestBoolFlag_RoundTrip(t *testing.T) {
	for _, b := range []BoolFlag{true, false} {
		encoded, err := b.Value()
		require.NoError(t, err)

		var decoded BoolFlag
		err = decoded.Scan(encoded)
		require.NoError(t, err)

		assert.Equal(t, b, decoded)
	}
}

func TestBoolFlag_EncodesAsZeroOne(t *testing.T) {
	encoded, err := BoolFlag(true).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(1), encoded)

	encoded, err = BoolFlag(false).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(0), encoded)
}

func TestBoolFlag_NonzeroDecodesTrue(t *testing.T) {
	var flag BoolFlag
	err := flag.Scan(int64(7))
	require.NoError(t, err)
	assert.True(t, flag.Bool())
}

func TestBoolFlag_ScanNull(t *testing.T) {
	flag := BoolFlag(true)
	err := flag.Scan(nil)
	require.NoError(t, err)
	assert.False(t, flag.Bool())
}
