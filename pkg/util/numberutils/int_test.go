package numberutils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-api/pkg/util/numberutils"
)

func TestToIntWithDefault(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	assert.Equal(42, numberutils.ToIntWithDefault("42", 7))
	assert.Equal(7, numberutils.ToIntWithDefault("nope", 7))
	assert.Equal(7, numberutils.ToIntWithDefault("", 7))
}

func TestToUint(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	id, err := numberutils.ToUint("42")
	assert.Nil(err)
	assert.EqualValues(42, id)

	for _, input := range []string{"", "abc", "-1", "1.5"} {
		_, err := numberutils.ToUint(input)
		assert.NotNil(err)
	}
}
