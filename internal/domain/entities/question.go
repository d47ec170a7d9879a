package entities

// Archetype is one of the fixed question templates.
type Archetype string

const (
	ArchetypeMultipleChoice      Archetype = "multiple-choice"
	ArchetypeMatching            Archetype = "matching"
	ArchetypeFillBlank           Archetype = "fill-blank"
	ArchetypeSentenceArrangement Archetype = "sentence-arrangement"
	ArchetypeSentenceCompletion  Archetype = "sentence-completion"
)

// Archetypes lists every template in canonical order. The composer iterates
// this slice when distributing question counts.
var Archetypes = []Archetype{
	ArchetypeMultipleChoice,
	ArchetypeMatching,
	ArchetypeFillBlank,
	ArchetypeSentenceArrangement,
	ArchetypeSentenceCompletion,
}

// MCVariant decides which field of the entry is shown as the prompt and which
// field the options (and therefore the distractors) are drawn from.
type MCVariant string

const (
	VariantWordToPinyin    MCVariant = "word-to-pinyin"
	VariantPinyinToWord    MCVariant = "pinyin-to-word"
	VariantMeaningToWord   MCVariant = "meaning-to-word"
	VariantMeaningToPinyin MCVariant = "meaning-to-pinyin"
	VariantWordToMeaning   MCVariant = "word-to-meaning"
	VariantPinyinToMeaning MCVariant = "pinyin-to-meaning"
)

// MCVariants lists all multiple-choice variants.
var MCVariants = []MCVariant{
	VariantWordToPinyin,
	VariantPinyinToWord,
	VariantMeaningToWord,
	VariantMeaningToPinyin,
	VariantWordToMeaning,
	VariantPinyinToMeaning,
}

// Question is the tagged union over all archetypes. Consumers switch on the
// concrete type; VocabularyIDs reports every entry the question exercises,
// which is what the frequency tracker keys its records on.
type Question interface {
	QuestionID() string
	QuestionArchetype() Archetype
	VocabularyIDs() []string
}

// Option is one selectable answer of a choice-based question. Labels are
// positional (A, B, C, ...) and assigned after shuffling, so the label never
// leaks which option is correct.
type Option struct {
	ID        string // vocabulary entry ID the option was built from
	Label     string
	Value     string
	IsCorrect bool
}

// MultipleChoiceQuestion shows one field of an entry and asks for another.
type MultipleChoiceQuestion struct {
	ID            string
	Variant       MCVariant
	Prompt        string
	CorrectAnswer *VocabularyEntry
	Options       []Option
}

func (q *MultipleChoiceQuestion) QuestionID() string           { return q.ID }
func (q *MultipleChoiceQuestion) QuestionArchetype() Archetype { return ArchetypeMultipleChoice }
func (q *MultipleChoiceQuestion) VocabularyIDs() []string      { return []string{q.CorrectAnswer.ID} }

// MatchingItem is one row of a matching question.
type MatchingItem struct {
	ID      string // vocabulary entry ID
	Word    string
	Pinyin  string
	Meaning string
	Example string
}

// MatchingQuestion holds N items plus three independently shuffled columns.
// Each column is a multiset-equal permutation of the items' field; shuffling
// them separately is what makes the matching task non-trivial.
type MatchingQuestion struct {
	ID               string
	Items            []MatchingItem
	ShuffledWords    []string
	ShuffledPinyins  []string
	ShuffledMeanings []string
}

func (q *MatchingQuestion) QuestionID() string           { return q.ID }
func (q *MatchingQuestion) QuestionArchetype() Archetype { return ArchetypeMatching }

func (q *MatchingQuestion) VocabularyIDs() []string {
	ids := make([]string, len(q.Items))
	for i, item := range q.Items {
		ids[i] = item.ID
	}
	return ids
}

// FillBlankQuestion blanks the entry's word out of its example sentence.
// BlankPosition and BlankLength are rune offsets into Sentence.
type FillBlankQuestion struct {
	ID              string
	Sentence        string
	SentencePinyin  string
	SentenceMeaning string
	BlankPosition   int
	BlankLength     int
	CorrectAnswer   *VocabularyEntry
	Options         []Option
}

func (q *FillBlankQuestion) QuestionID() string           { return q.ID }
func (q *FillBlankQuestion) QuestionArchetype() Archetype { return ArchetypeFillBlank }
func (q *FillBlankQuestion) VocabularyIDs() []string      { return []string{q.CorrectAnswer.ID} }

// SentenceToken is one orderable token of an arrangement question. Position is
// the token's 0-based index in the correct sentence and is what correctness
// scoring compares against.
type SentenceToken struct {
	ID       string
	Text     string
	Position int
}

// SentenceArrangementQuestion asks the learner to restore the original token
// order of an example sentence.
type SentenceArrangementQuestion struct {
	ID              string
	CorrectSentence string
	SentencePinyin  string
	SentenceMeaning string
	Tokens          []SentenceToken // correct order
	ShuffledTokens  []SentenceToken // presentation order
	Entry           *VocabularyEntry
}

func (q *SentenceArrangementQuestion) QuestionID() string { return q.ID }
func (q *SentenceArrangementQuestion) QuestionArchetype() Archetype {
	return ArchetypeSentenceArrangement
}
func (q *SentenceArrangementQuestion) VocabularyIDs() []string { return []string{q.Entry.ID} }

// SentenceCompletionQuestion removes the entry's word from its example
// sentence; the pinyin of the removed word remains visible as a hint.
// Before and After hold the sentence text around the blank verbatim.
type SentenceCompletionQuestion struct {
	ID              string
	Sentence        string
	SentenceMeaning string
	BlankWord       string
	BlankPinyin     string
	Before          string
	After           string
	Entry           *VocabularyEntry
}

func (q *SentenceCompletionQuestion) QuestionID() string { return q.ID }
func (q *SentenceCompletionQuestion) QuestionArchetype() Archetype {
	return ArchetypeSentenceCompletion
}
func (q *SentenceCompletionQuestion) VocabularyIDs() []string { return []string{q.Entry.ID} }
