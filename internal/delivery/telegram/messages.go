// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgWelcome = "Chào mừng đến với bot luyện từ vựng tiếng Trung!\n\n" +
		"/quiz — bắt đầu bài luyện tập\n" +
		"/progress — xem tiến độ học\n" +
		"/history — lịch sử các bài đã làm\n" +
		"/help — trợ giúp"

	msgHelp = "Các lệnh:\n" +
		"/quiz — bắt đầu bài luyện tập mới\n" +
		"/cancel — huỷ bài đang làm\n" +
		"/progress — tiến độ học theo từ\n" +
		"/history — lịch sử bài làm\n" +
		"/reload — tải lại dữ liệu từ vựng\n\n" +
		"Với câu ghép câu: trả lời bằng thứ tự các số, ví dụ \"3 1 4 2\".\n" +
		"Với câu nối từ: mỗi dòng một bộ, ví dụ \"1-b-2\".\n" +
		"Với câu điền từ: gõ từ còn thiếu."

	msgChooseLength      = "Chọn độ dài bài luyện tập:"
	msgQuizUnavailable   = "Không thể tạo bài luyện tập, thử lại sau."
	msgCorpusUnavailable = "Không tải được dữ liệu từ vựng. Thử lại sau."
	msgNoActiveQuiz      = "Chưa có bài luyện tập nào. Dùng /quiz để bắt đầu."
	msgQuizCancelled     = "Đã huỷ bài luyện tập."
	msgAlreadyAnswered   = "Câu này đã được trả lời rồi."
	msgInvalidAnswer     = "Không hiểu câu trả lời. Xem /help để biết định dạng."
	msgCorrect           = "✅ Chính xác!"
	msgIncorrect         = "❌ Chưa đúng."
	msgReloaded          = "Đã tải lại dữ liệu từ vựng."
	msgHistoryEmpty      = "Chưa có bài luyện tập nào được hoàn thành."
	msgProgressEmpty     = "Chưa có dữ liệu tiến độ. Làm một bài /quiz trước nhé."
	msgInternalError     = "Có lỗi xảy ra. Thử lại sau."
)

var lengthLabels = []struct {
	Label string
	Data  string
}{
	{"Ngắn (10 câu)", "len:short"},
	{"Vừa (20 câu)", "len:medium"},
	{"Dài (30 câu)", "len:long"},
	{"Tối đa (50 câu)", "len:maximum"},
}

// newPlainMessage creates a plain message without parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

func lengthKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(lengthLabels))
	for _, l := range lengthLabels {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Label, l.Data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
