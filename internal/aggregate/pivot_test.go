package aggregate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fact struct {
	date    string
	who     string
	entries int
}

func pivotFacts(rows []fact) []Row[int] {
	return Pivot(rows,
		func(f fact) string { return f.date },
		func(f fact) string { return f.who },
		func(f fact) int { return f.entries },
		Sum[int],
	)
}

func TestPivot_Example(t *testing.T) {
	rows := []fact{
		{"2024-01-01", "Alex", 3},
		{"2024-01-01", "Sam", 5},
		{"2024-01-02", "Alex", 2},
	}

	out := pivotFacts(rows)

	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"date":"2024-01-01","Alex":3,"Sam":5},{"date":"2024-01-02","Alex":2}]`, string(b))

	_, ok := out[1].Get("Sam")
	assert.False(t, ok, "absent sub-entity must not be zero-filled")
}

func TestPivot_SumsAndOrders(t *testing.T) {
	rows := []fact{
		{"2024-01-02", "Sam", 1},
		{"2024-01-02", "Alex", 4},
		{"2024-01-02", "Sam", 6},
		{"2024-01-01", "Alex", 2},
	}

	out := pivotFacts(rows)

	require.Len(t, out, 2)
	assert.Equal(t, "2024-01-02", out[0].Date, "dates follow first-seen order")
	assert.Equal(t, []string{"Sam", "Alex"}, out[0].Keys())
	sam, _ := out[0].Get("Sam")
	assert.Equal(t, 7, sam)
	assert.Equal(t, []string{"Sam", "Alex"}, Columns(out))

	b, err := json.Marshal(out[0])
	require.NoError(t, err)
	assert.Equal(t, `{"date":"2024-01-02","Sam":7,"Alex":4}`, string(b), "JSON keeps column order")
}

func TestPivot_EmptyKeyOpensDateOnly(t *testing.T) {
	out := pivotFacts([]fact{{"2024-01-01", "", 9}, {"2024-01-02", "Alex", 1}})

	require.Len(t, out, 2)
	assert.Empty(t, out[0].Keys())
	assert.Equal(t, []string{"Alex"}, Columns(out))
}

func TestPivot_Empty(t *testing.T) {
	out := pivotFacts(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestPivot_Last(t *testing.T) {
	rows := []fact{{"d", "x", 1}, {"d", "x", 2}, {"d", "x", 3}}
	out := Pivot(rows,
		func(f fact) string { return f.date },
		func(f fact) string { return f.who },
		func(f fact) int { return f.entries },
		Last[int],
	)
	v, _ := out[0].Get("x")
	assert.Equal(t, 3, v)
}

func TestRow_UnmarshalKeepsOrder(t *testing.T) {
	var rows []Row[int]
	require.NoError(t, json.Unmarshal([]byte(`[{"date":"2024-01-01","Sam":5,"Alex":3}]`), &rows))

	require.Len(t, rows, 1)
	assert.Equal(t, "2024-01-01", rows[0].Date)
	assert.Equal(t, []string{"Sam", "Alex"}, rows[0].Keys())

	b, err := json.Marshal(rows)
	require.NoError(t, err)
	assert.Equal(t, `[{"date":"2024-01-01","Sam":5,"Alex":3}]`, string(b))
}

func TestRow_UnmarshalRejectsNonObject(t *testing.T) {
	var r Row[int]
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &r))
	assert.Error(t, json.Unmarshal([]byte(`{"date":"d","x":"not-int"}`), &r))
}

func TestRow_DateNamedColumnRoundTrips(t *testing.T) {
	out := pivotFacts([]fact{
		{"2024-01-01", "date", 7},
		{"2024-01-01", "_date", 2},
		{"2024-01-01", "Sam", 1},
	})

	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"date":"2024-01-01","_date":7,"__date":2,"Sam":1}]`, string(b))

	var back []Row[int]
	require.NoError(t, json.Unmarshal(b, &back))
	require.Len(t, back, 1)
	assert.Equal(t, "2024-01-01", back[0].Date)
	assert.Equal(t, []string{"date", "_date", "Sam"}, back[0].Keys())
	v, ok := back[0].Get("date")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}
