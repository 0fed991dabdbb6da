package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfAdder(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a, b  Bit
		sum   Bit
		carry Bit
	}){
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{1, 0, 1, 0},
		{1, 1, 0, 1},
	}

	for _, entry := range table {
		sum, carry := HalfAdder(entry.a, entry.b)
		assert.Equal(entry.sum, sum, "sum(%v,%v)", entry.a, entry.b)
		assert.Equal(entry.carry, carry, "carry(%v,%v)", entry.a, entry.b)
	}
}

func TestFullAdder(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a, b, cin Bit
		sum       Bit
		cout      Bit
	}){
		{0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0},
		{0, 1, 0, 1, 0},
		{0, 1, 1, 0, 1},
		{1, 0, 0, 1, 0},
		{1, 0, 1, 0, 1},
		{1, 1, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}

	for _, entry := range table {
		sum, cout := FullAdder(entry.a, entry.b, entry.cin)
		assert.Equal(entry.sum, sum, "sum(%v,%v,%v)", entry.a, entry.b, entry.cin)
		assert.Equal(entry.cout, cout, "cout(%v,%v,%v)", entry.a, entry.b, entry.cin)
	}
}

func TestMux2(t *testing.T) {
	assert := assert.New(t)

	for _, a := range []Bit{0, 1} {
		for _, b := range []Bit{0, 1} {
			assert.Equal(a, Mux2(a, b, 0))
			assert.Equal(b, Mux2(a, b, 1))
		}
	}
}
