package handler

import (
	"regexp"
	"strconv"
	"strings"

	"speakify/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// mainMenuAction is what a main-menu text resolves to.
type mainMenuAction int

const (
	mainMenuUnknown mainMenuAction = iota
	mainMenuRandomQuestion
	mainMenuListAll
	mainMenuChatAdmin
)

// mainMenuCommand pairs an action with the category it targets, if any.
type mainMenuCommand struct {
	action   mainMenuAction
	category domain.Category
}

// interpretMainMenu resolves a main-menu selection into a tagged action.
func interpretMainMenu(text string) mainMenuCommand {
	switch text {
	case btnPart1:
		return mainMenuCommand{action: mainMenuRandomQuestion, category: domain.Part1}
	case btnPart2:
		return mainMenuCommand{action: mainMenuRandomQuestion, category: domain.Part2}
	case btnPart3:
		return mainMenuCommand{action: mainMenuRandomQuestion, category: domain.Part3}
	case btnListAll:
		return mainMenuCommand{action: mainMenuListAll}
	case btnChatAdmin:
		return mainMenuCommand{action: mainMenuChatAdmin}
	}
	return mainMenuCommand{action: mainMenuUnknown}
}

// adminMenuAction is what an admin-panel text resolves to.
type adminMenuAction int

const (
	adminMenuUnknown adminMenuAction = iota
	adminMenuAdd
	adminMenuDelete
	adminMenuList
	adminMenuStats
	adminMenuBroadcast
	adminMenuBackToMain
)

// interpretAdminMenu resolves an admin-panel selection into a tagged action.
func interpretAdminMenu(text string) adminMenuAction {
	switch text {
	case btnAddQuestion:
		return adminMenuAdd
	case btnDeleteQuestion:
		return adminMenuDelete
	case btnListQuestions:
		return adminMenuList
	case btnUserStats:
		return adminMenuStats
	case btnBroadcast:
		return adminMenuBroadcast
	case btnBackToMain:
		return adminMenuBackToMain
	}
	return adminMenuUnknown
}

// interpretPartSelection resolves a category picker selection.
func interpretPartSelection(text string) (domain.Category, bool) {
	switch text {
	case selectPart1:
		return domain.Part1, true
	case selectPart2:
		return domain.Part2, true
	case selectPart3:
		return domain.Part3, true
	}
	return 0, false
}

var lookupShortcutRe = regexp.MustCompile(`^(\d+):(\d+)$`)

// parseLookupShortcut recognizes the admin "<part>:<id>" quick lookup.
// The part number is returned unvalidated so the caller can report an
// out-of-range part distinctly from a non-matching message.
func parseLookupShortcut(text string) (part, id int, ok bool) {
	match := lookupShortcutRe.FindStringSubmatch(text)
	if match == nil {
		return 0, 0, false
	}

	part, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, 0, false
	}
	id, err = strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, false
	}
	return part, id, true
}

func trimmedText(c tele.Context) string {
	return strings.TrimSpace(c.Text())
}
