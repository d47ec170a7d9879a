// render.go turns questions and results into Telegram messages.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/hantubot/hantu-quiz-bot/internal/domain/entities"
)

// variantPrompts explain what the learner is asked for, per variant.
var variantPrompts = map[entities.MCVariant]string{
	entities.VariantWordToPinyin:    "Chọn phiên âm đúng của từ:",
	entities.VariantPinyinToWord:    "Chọn chữ Hán đúng với phiên âm:",
	entities.VariantMeaningToWord:   "Chọn chữ Hán đúng với nghĩa:",
	entities.VariantMeaningToPinyin: "Chọn phiên âm đúng với nghĩa:",
	entities.VariantWordToMeaning:   "Chọn nghĩa đúng của từ:",
	entities.VariantPinyinToMeaning: "Chọn nghĩa đúng với phiên âm:",
}

// renderQuestion builds the message text and, for choice questions, the
// option keyboard for one question.
func renderQuestion(q entities.Question, index, total int) (string, *tgbotapi.InlineKeyboardMarkup) {
	header := fmt.Sprintf("Câu %d/%d\n\n", index, total)

	switch question := q.(type) {
	case *entities.MultipleChoiceQuestion:
		text := header + variantPrompts[question.Variant] + "\n\n" + question.Prompt
		kb := optionsKeyboard(question.ID, question.Options)
		return text, &kb

	case *entities.FillBlankQuestion:
		text := header + "Chọn từ điền vào chỗ trống:\n\n" +
			blankedSentence(question.Sentence, question.BlankPosition, question.BlankLength) +
			"\n" + question.SentenceMeaning
		kb := optionsKeyboard(question.ID, question.Options)
		return text, &kb

	case *entities.MatchingQuestion:
		var b strings.Builder
		b.WriteString(header)
		b.WriteString("Nối từ — phiên âm — nghĩa.\nTrả lời mỗi dòng một bộ, ví dụ \"1-b-2\".\n\n")
		for i, w := range question.ShuffledWords {
			fmt.Fprintf(&b, "%d. %s\n", i+1, w)
		}
		b.WriteString("\n")
		for i, p := range question.ShuffledPinyins {
			fmt.Fprintf(&b, "%c. %s\n", 'a'+i, p)
		}
		b.WriteString("\n")
		for i, m := range question.ShuffledMeanings {
			fmt.Fprintf(&b, "%d) %s\n", i+1, m)
		}
		return b.String(), nil

	case *entities.SentenceArrangementQuestion:
		var b strings.Builder
		b.WriteString(header)
		b.WriteString("Sắp xếp các từ thành câu đúng.\nTrả lời bằng thứ tự các số, ví dụ \"3 1 4 2\".\n\n")
		for i, tok := range question.ShuffledTokens {
			fmt.Fprintf(&b, "%d. %s\n", i+1, tok.Text)
		}
		fmt.Fprintf(&b, "\nNghĩa: %s", question.SentenceMeaning)
		return b.String(), nil

	case *entities.SentenceCompletionQuestion:
		text := header + "Gõ từ còn thiếu:\n\n" +
			question.Before + "____" + question.After +
			"\nGợi ý phiên âm: " + question.BlankPinyin +
			"\nNghĩa: " + question.SentenceMeaning
		return text, nil
	}

	return header, nil
}

// renderFeedback builds the post-answer message for one answer.
func renderFeedback(q entities.Question, a entities.Answer) string {
	switch answer := a.(type) {
	case *entities.MultipleChoiceAnswer:
		return choiceFeedback(answer.IsCorrect, correctOptionValue(q))
	case *entities.FillBlankAnswer:
		return choiceFeedback(answer.IsCorrect, correctOptionValue(q))
	case *entities.MatchingAnswer:
		return fmt.Sprintf("Đúng %d/%d bộ.", answer.CorrectCount, len(answer.Connections))
	case *entities.SentenceArrangementAnswer:
		if answer.IsCorrect {
			return msgCorrect
		}
		if sa, ok := q.(*entities.SentenceArrangementQuestion); ok {
			return fmt.Sprintf("%s Đúng %d/%d từ.\nCâu đúng: %s",
				msgIncorrect, answer.CorrectCount, answer.TotalTokens, sa.CorrectSentence)
		}
		return msgIncorrect
	case *entities.SentenceCompletionAnswer:
		if answer.IsCorrect {
			return msgCorrect
		}
		if sc, ok := q.(*entities.SentenceCompletionQuestion); ok {
			return msgIncorrect + " Từ đúng: " + sc.BlankWord
		}
		return msgIncorrect
	}
	return ""
}

// renderResult builds the end-of-quiz summary.
func renderResult(result *entities.QuizResult) string {
	var b strings.Builder
	b.WriteString("Hoàn thành bài luyện tập!\n\n")
	fmt.Fprintf(&b, "Kết quả: %d/%d (%d%%)\n",
		result.CorrectCount, result.TotalQuestions, result.PercentageScore)
	fmt.Fprintf(&b, "Điểm tiến bộ: %+.1f\n", result.ProgressScore)
	fmt.Fprintf(&b, "Thời gian: %s\n", result.TotalTime.Round(1e9))

	if len(result.FrequencyData) > 0 {
		b.WriteString("\nTừ trong bài:\n")
		for _, r := range result.FrequencyData {
			fmt.Fprintf(&b, "%s (%s): %d/%d đúng, %+.1f điểm\n",
				r.Word, r.Pinyin, r.CorrectAnswers, r.Appearances, r.ProgressPoints)
		}
	}
	return b.String()
}

// optionsKeyboard builds one button per option. Callback data stays under
// Telegram's 64-byte limit by carrying a question ID prefix plus the option
// index.
func optionsKeyboard(questionID string, options []entities.Option) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options))
	for i, o := range options {
		label := fmt.Sprintf("%s. %s", o.Label, o.Value)
		data := fmt.Sprintf("opt:%s:%d", shortID(questionID), i)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// shortID is the callback-data prefix of a question ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// blankedSentence replaces the blank's character run with underscores.
func blankedSentence(sentence string, position, length int) string {
	runes := []rune(sentence)
	if position < 0 || position+length > len(runes) {
		return sentence
	}
	return string(runes[:position]) + "____" + string(runes[position+length:])
}

func choiceFeedback(correct bool, correctValue string) string {
	if correct {
		return msgCorrect
	}
	return msgIncorrect + " Đáp án đúng: " + correctValue
}

func correctOptionValue(q entities.Question) string {
	var options []entities.Option
	switch question := q.(type) {
	case *entities.MultipleChoiceQuestion:
		options = question.Options
	case *entities.FillBlankQuestion:
		options = question.Options
	}
	for _, o := range options {
		if o.IsCorrect {
			return o.Value
		}
	}
	return ""
}
