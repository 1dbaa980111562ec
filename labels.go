package parley

import "strings"

// Labels holds the localized strings shown to the user. They are
// presentation only and never change a message's Role.
type Labels struct {
	User string
	AI   string

	// ErrorPrefix precedes the error text of a failed generation in the
	// stored ai message.
	ErrorPrefix string

	Welcome          string
	StatusReady      string
	StatusThinking   string
	StatusError      string
	StatusBusy       string
	StatusListening  string
	StatusRecognized string
	StatusSpeechFail string
	StatusNoSpeech   string
	StatusCleared    string
	StatusKeySaved   string
	StatusExported   string
	StatusThemeDark  string
	StatusThemeLight string

	InputPlaceholder string
	EnterAPIKey      string
	APIKeyPrompt     string
	ConfirmClear     string
	NothingToExport  string

	ExportTitle string
	CreatedAt   string
}

// Role returns the label for r.
func (l Labels) Role(r Role) string {
	if r == RoleUser {
		return l.User
	}
	return l.AI
}

// JapaneseLabels returns the ja-JP strings.
func JapaneseLabels() Labels {
	return Labels{
		User:             "ユーザー",
		AI:               "AI",
		ErrorPrefix:      "エラーが発生しました: ",
		Welcome:          "何でも聞いてください。",
		StatusReady:      "準備完了",
		StatusThinking:   "考え中...",
		StatusError:      "エラー発生",
		StatusBusy:       "応答を待っています",
		StatusListening:  "お話しください...",
		StatusRecognized: "音声を認識しました",
		StatusSpeechFail: "音声認識エラー",
		StatusNoSpeech:   "お使いの環境は音声入力に対応していません",
		StatusCleared:    "会話をクリアしました",
		StatusKeySaved:   "APIキーを保存しました",
		StatusExported:   "保存しました",
		StatusThemeDark:  "ダークテーマ",
		StatusThemeLight: "ライトテーマ",
		InputPlaceholder: "メッセージを入力...",
		EnterAPIKey:      "APIキーを入力してください",
		APIKeyPrompt:     "Gemini APIキー",
		ConfirmClear:     "会話履歴を全て削除しますか? (y/n)",
		NothingToExport:  "保存する会話がありません",
		ExportTitle:      "AI会話",
		CreatedAt:        "作成日時",
	}
}

// EnglishLabels returns the en-US strings.
func EnglishLabels() Labels {
	return Labels{
		User:             "User",
		AI:               "AI",
		ErrorPrefix:      "An error occurred: ",
		Welcome:          "Ask me anything.",
		StatusReady:      "Ready",
		StatusThinking:   "Thinking...",
		StatusError:      "Error",
		StatusBusy:       "Still waiting for the previous reply",
		StatusListening:  "Listening...",
		StatusRecognized: "Speech recognized",
		StatusSpeechFail: "Speech recognition error",
		StatusNoSpeech:   "Speech input is not supported here",
		StatusCleared:    "Conversation cleared",
		StatusKeySaved:   "API key saved",
		StatusExported:   "Saved",
		StatusThemeDark:  "Dark theme",
		StatusThemeLight: "Light theme",
		InputPlaceholder: "Type a message...",
		EnterAPIKey:      "Please enter an API key",
		APIKeyPrompt:     "Gemini API key",
		ConfirmClear:     "Delete the entire conversation history? (y/n)",
		NothingToExport:  "There is no conversation to save",
		ExportTitle:      "AI-Conversation",
		CreatedAt:        "Created",
	}
}

// LabelsFor returns the labels for a BCP 47 locale. Only the language
// subtag is considered; unknown languages fall back to English.
func LabelsFor(locale string) Labels {
	lang, _, _ := strings.Cut(strings.ToLower(locale), "-")
	switch lang {
	case "ja":
		return JapaneseLabels()
	default:
		return EnglishLabels()
	}
}
