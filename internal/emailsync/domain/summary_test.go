package domain

import (
	"reflect"
	"testing"

	"gorm.io/gorm/schema"
)

func TestSentimentIsValid(t *testing.T) {
	for _, s := range []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative, SentimentUrgent} {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Sentiment("ecstatic").IsValid() {
		t.Error("unknown sentiment should be invalid")
	}
}

func TestPipelineStageIsValid(t *testing.T) {
	for _, p := range []PipelineStage{StageLead, StageQualified, StageProposal, StageNegotiation, StageClosedWon, StageClosedLost} {
		if !p.IsValid() {
			t.Errorf("%q should be valid", p)
		}
	}
	if PipelineStage("moonshot").IsValid() {
		t.Error("unknown stage should be invalid")
	}
}

// A message ID is only unique per user. Two members of a team connecting the
// same shared mailbox must both be able to store a summary for the same
// provider message ID, so the unique index has to span both columns.
func TestEmailSummaryUniquenessIsPerUser(t *testing.T) {
	typ := reflect.TypeOf(EmailSummary{})

	for _, name := range []string{"UserID", "MessageID"} {
		field, ok := typ.FieldByName(name)
		if !ok {
			t.Fatalf("field %s missing", name)
		}
		settings := schema.ParseTagSetting(field.Tag.Get("gorm"), ";")
		if got := settings["UNIQUEINDEX"]; got != "idx_user_message" {
			t.Errorf("%s uniqueIndex = %q, want shared idx_user_message", name, got)
		}
		if _, single := settings["UNIQUE"]; single {
			t.Errorf("%s carries a single-column unique constraint", name)
		}
	}
}
