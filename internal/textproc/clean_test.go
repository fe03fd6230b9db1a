package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_StripsPageNumbers(t *testing.T) {
	assert.Equal(t, "before after", Clean("before Page 3 after"))
	assert.Equal(t, "before after", Clean("before Page12 after"))
}

func TestClean_StripsFormulas(t *testing.T) {
	assert.Equal(t, "energy is famous", Clean("energy is $E=mc^2$ famous"))
}

func TestClean_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Clean("a\n\n  b\t\tc"))
}

func TestClean_Empty(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "", Clean("   \n "))
}

func TestClean_PlainTextUntouched(t *testing.T) {
	assert.Equal(t, "nothing to remove here", Clean("nothing to remove here"))
}

func TestClean_MultipleArtifacts(t *testing.T) {
	in := "Page 1 intro $a+b$ middle Page 2 end"
	assert.Equal(t, "intro middle end", Clean(in))
}
