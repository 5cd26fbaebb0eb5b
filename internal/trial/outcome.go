package trial

// Outcome is how a single trial was resolved.
type Outcome string

const (
	// OutcomeCorrect is a correct answer given before the prompt was shown.
	OutcomeCorrect Outcome = "correct"

	// OutcomeAssisted is a correct answer given after the prompt was shown.
	OutcomeAssisted Outcome = "assisted"

	// OutcomeNoAnswer is an intervention trial that hit the time limit.
	OutcomeNoAnswer Outcome = "no-answer"

	// OutcomeIncorrect is a wrong answer. Intervention sessions treat it as a
	// retry signal only; baseline and target-word sessions persist it.
	OutcomeIncorrect Outcome = "incorrect"
)

// Valid reports whether o is one of the known outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeCorrect, OutcomeAssisted, OutcomeNoAnswer, OutcomeIncorrect:
		return true
	}
	return false
}
