package voice_test

import (
	"testing"
	"time"

	"fjacquet/voice-ledger/pkg/voice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceNow = time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)

func TestParseAt(t *testing.T) {
	cmd := voice.ParseAt("$45 uber friday", referenceNow)

	amount, ok := cmd.Amount()
	require.True(t, ok)
	assert.Equal(t, "45", amount.String())
	assert.Equal(t, voice.USD, cmd.Currency())
	assert.Equal(t, voice.Expense, cmd.TransactionType())
	assert.Equal(t, "transport", cmd.Category())
	assert.Equal(t, "uber", cmd.Description())

	date, ok := cmd.OccurredAt()
	require.True(t, ok)
	assert.Equal(t, time.Friday, date.Weekday())
}

func TestParse(t *testing.T) {
	cmd := voice.Parse("got 2k from freelance")
	assert.Equal(t, voice.Income, cmd.TransactionType())
	assert.True(t, cmd.HasUsableAmount())
	assert.Equal(t, "got 2k from freelance", cmd.View().Transcript)
}

func TestNewParser_Options(t *testing.T) {
	kw := voice.DefaultKeywords()
	kw.Categories = append([]voice.CategoryKeywords{{Name: "pets", Keywords: []string{"vet"}}}, kw.Categories...)

	p := voice.NewParser(
		voice.WithKeywords(kw),
		voice.WithDefaultCurrency(voice.EUR),
		voice.WithClock(func() time.Time { return referenceNow }),
	)

	cmd := p.Parse("vet 80 yesterday")
	assert.Equal(t, "pets", cmd.Category())
	assert.Equal(t, voice.EUR, cmd.Currency())
	assert.True(t, referenceNow.AddDate(0, 0, -1).Equal(cmd.OccurredAtOr(time.Time{})))
}

func TestDefaultKeywordsIsCopy(t *testing.T) {
	kw := voice.DefaultKeywords()
	kw.Categories[0].Name = "changed"
	assert.NotEqual(t, "changed", voice.DefaultKeywords().Categories[0].Name)
}
