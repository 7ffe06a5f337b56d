package handler

import (
	"strconv"

	"speakify/internal/domain"
	"speakify/internal/pagination"

	tele "gopkg.in/telebot.v3"
)

// Reply keyboard button labels.
const (
	btnPart1     = "1️⃣ Part 1"
	btnPart2     = "2️⃣ Part 2"
	btnPart3     = "3️⃣ Part 3"
	btnListAll   = "📜 List All Questions"
	btnChatAdmin = "💬 Chat with Admin"

	btnAddQuestion    = "➕ Add Question"
	btnDeleteQuestion = "➖ Delete Question"
	btnListQuestions  = "📄 List Questions"
	btnUserStats      = "📊 User Statistics"
	btnBroadcast      = "📢 Broadcast"
	btnBackToMain     = "⬅️ Back to Main"

	btnAdminMenuBack = "⬅️ Admin Menu"
	btnMainMenuBack  = "⬅️ Main Menu"
	btnCancel        = "❌ Cancel"

	selectPart1 = "Part 1"
	selectPart2 = "Part 2"
	selectPart3 = "Part 3"
)

// Inline button uniques.
const (
	uniquePage    = "page"
	uniqueRandom  = "random"
	uniqueAICheck = "aicheck"
)

// Inline buttons registered as callback endpoints. Text and data are
// filled in when keyboards are rendered.
var (
	btnPage    = tele.Btn{Unique: uniquePage}
	btnRandom  = tele.Btn{Unique: uniqueRandom}
	btnAICheck = tele.Btn{Unique: uniqueAICheck}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(btnPart1), menu.Text(btnPart2), menu.Text(btnPart3)),
		menu.Row(menu.Text(btnListAll), menu.Text(btnChatAdmin)),
	)
	return menu
}

// adminMenuMarkup returns the admin panel keyboard
func adminMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(btnAddQuestion), menu.Text(btnDeleteQuestion)),
		menu.Row(menu.Text(btnListQuestions), menu.Text(btnUserStats)),
		menu.Row(menu.Text(btnBroadcast)),
		menu.Row(menu.Text(btnBackToMain)),
	)
	return menu
}

// partSelectionMarkup returns a part picker with the given back button.
func partSelectionMarkup(backLabel string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(selectPart1), menu.Text(selectPart2), menu.Text(selectPart3)),
		menu.Row(menu.Text(backLabel)),
	)
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(menu.Row(menu.Text(btnCancel)))
	return menu
}

func removeKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{RemoveKeyboard: true}
}

func forceReply() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{ForceReply: true}
}

// questionMarkup returns the inline actions attached to an issued
// question: re-roll and AI check, both carrying the category.
func questionMarkup(cat domain.Category) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("Get Another Question", uniqueRandom, cat.Key()),
		markup.Data("🤖 AI Check", uniqueAICheck, cat.Key()),
	))
	return markup
}

// paginationMarkup builds prev/next navigation for a list page. Both
// buttons carry the target page and the category.
func paginationMarkup(p pagination.Page, cat domain.Category) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	row := tele.Row{}
	if p.HasPrev() {
		row = append(row, markup.Data("⬅️ Previous", uniquePage, strconv.Itoa(p.Number-1), cat.Key()))
	}
	if p.HasNext() {
		row = append(row, markup.Data("Next ➡️", uniquePage, strconv.Itoa(p.Number+1), cat.Key()))
	}
	if len(row) > 0 {
		markup.Inline(row)
	}

	return markup
}
