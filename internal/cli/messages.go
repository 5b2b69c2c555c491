package cli

// messages is the user-facing text of the interactive shell.
type messages struct {
	InputHeader   string // %s: database path
	InputPrompt   string
	Saved         string // %s: entry text
	MenuTitle     string
	MenuOptions   string
	MenuLiteral   string
	ChoicePrompt  string
	FromPrompt    string
	DateHeader    string // %s: date
	KeywordHeader string // %s: keyword
	NoEntries     string
	ActionsHint   string
	DeletePrompt  string
	Deleted       string // %d: id
	BadID         string
}

var catalog = map[string]messages{
	"en": {
		InputHeader:   "--- Life log input mode (type \"exit\" to finish) --- Database: %s",
		InputPrompt:   "Record an entry: ",
		Saved:         "Saved: %s",
		MenuTitle:     "Which entries do you want to see?",
		MenuOptions:   "1: today, 2: yesterday, 3: all, 4: from a date onward",
		MenuLiteral:   "Or type a date (e.g. 2025-12-25) or a keyword (e.g. だし巻き卵)",
		ChoicePrompt:  ">> ",
		FromPrompt:    "From when? (YYYY-MM-DD): ",
		DateHeader:    "--- Entries for %s ---",
		KeywordHeader: "--- Search results for %q ---",
		NoEntries:     "No matching entries.",
		ActionsHint:   "Type \"exit\" to quit or \"delete\" to delete an entry by ID.",
		DeletePrompt:  "ID to delete: ",
		Deleted:       "Deleted entry ID:%d.",
		BadID:         "Error: the ID must be a number.",
	},
	"ja": {
		InputHeader:   "--- 人生ログ入力モード（\"exit\"で終了） --- Database: %s",
		InputPrompt:   "記録を打ち込んでね: ",
		Saved:         "保存完了: %s",
		MenuTitle:     "どの記録を表示しますか？",
		MenuOptions:   "1:今日, 2:昨日, 3:全部, 4:指定日以降すべて",
		MenuLiteral:   "直接入力（日付: 2025-12-25とか / 単語: だし巻き卵とか）",
		ChoicePrompt:  ">> ",
		FromPrompt:    "いつから？ (YYYY-MM-DD): ",
		DateHeader:    "--- 日付「%s」の記録 ---",
		KeywordHeader: "--- キーワード「%s」の検索結果 ---",
		NoEntries:     "該当する記録はありません。",
		ActionsHint:   "\"exit\"で終了。\"delete\"でID削除。",
		DeletePrompt:  "削除するIDを入力: ",
		Deleted:       "ID:%dの記録を消去しました。",
		BadID:         "エラー: IDは数字で入力してください。",
	},
}

func messagesFor(lang string) messages {
	if m, ok := catalog[lang]; ok {
		return m
	}
	return catalog["en"]
}
