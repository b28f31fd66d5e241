package winpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	assert.Nil(t, Split(""))
	assert.Equal(t, []string{`C:\Windows`}, Split(`C:\Windows`))
	assert.Equal(t, []string{`C:\Windows`, `C:\Tools`}, Split(`C:\Windows;C:\Tools`))
	// Empty entries survive the round trip
	assert.Equal(t, []string{`C:\Windows`, "", `C:\Tools`}, Split(`C:\Windows;;C:\Tools`))
}

func TestJoin_RoundTrip(t *testing.T) {
	value := `C:\Windows;;C:\Tools;%USERPROFILE%\bin`
	assert.Equal(t, value, Join(Split(value)))
}

func TestContains(t *testing.T) {
	value := `C:\Windows;C:\ffmpeg\ffmpeg-7.1\bin;%SystemRoot%\system32`

	assert.True(t, Contains(value, `C:\ffmpeg\ffmpeg-7.1\bin`))
	// Case-insensitive, trailing separator ignored
	assert.True(t, Contains(value, `C:\FFMPEG\FFMPEG-7.1\BIN`))
	assert.True(t, Contains(value, `C:\ffmpeg\ffmpeg-7.1\bin\`))
	// Substrings of an entry are not matches
	assert.False(t, Contains(value, `C:\ffmpeg`))
	assert.False(t, Contains("", `C:\ffmpeg`))
}

func TestAppend_Absent(t *testing.T) {
	got, changed := Append(`C:\Windows`, `C:\ffmpeg\bin`)
	assert.True(t, changed)
	assert.Equal(t, `C:\Windows;C:\ffmpeg\bin`, got)
}

func TestAppend_EmptyValue(t *testing.T) {
	got, changed := Append("", `C:\ffmpeg\bin`)
	assert.True(t, changed)
	assert.Equal(t, `C:\ffmpeg\bin`, got)
}

func TestAppend_AlreadyPresent(t *testing.T) {
	value := `C:\Windows;C:\ffmpeg\bin;C:\Tools`

	got, changed := Append(value, `C:\ffmpeg\bin`)
	assert.False(t, changed)
	assert.Equal(t, value, got, "value must be untouched when entry exists")
}

func TestAppend_Idempotent(t *testing.T) {
	value, changed := Append("", `C:\ffmpeg\bin`)
	assert.True(t, changed)

	// Re-running the installer must not accumulate duplicates.
	again, changed := Append(value, `C:\ffmpeg\bin`)
	assert.False(t, changed)
	assert.Equal(t, value, again)
}

func TestAppend_PreservesUnrelatedEntries(t *testing.T) {
	value := `C:\Windows;%USERPROFILE%\bin;;C:\Tools`

	got, changed := Append(value, `C:\ffmpeg\bin`)
	assert.True(t, changed)
	assert.Equal(t, value+`;C:\ffmpeg\bin`, got)
}
