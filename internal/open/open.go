// Package open jumps from a stored message back into its source export
// file in the user's editor.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Akash7367/chatlens/internal/parse"
	"github.com/Akash7367/chatlens/internal/store"
)

// Export opens a chat's export file in $EDITOR. With msgID >= 0 the editor
// jumps to that message's header line when it supports line addressing.
func Export(db *store.DB, chatKey string, msgID int) error {
	chat, err := db.GetChatByKey(chatKey)
	if err != nil {
		return fmt.Errorf("get chat: %w", err)
	}
	if chat == nil {
		return fmt.Errorf("chat not found: %s", chatKey)
	}
	if _, err := os.Stat(chat.FilePath); err != nil {
		return fmt.Errorf("export file not found: %s", chat.FilePath)
	}

	lineNum := 1
	if msgID >= 0 {
		if data, err := os.ReadFile(chat.FilePath); err == nil {
			lineNum = headerLine(string(data), parse.VariantByName(chat.Format), msgID)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "less"
	}

	return openInEditor(editor, chat.FilePath, lineNum)
}

// headerLine finds the 1-based line of the msgID-th record header. Headers
// are counted the way the parser counts records, so multi-line bodies do
// not shift the mapping.
func headerLine(data string, v parse.FormatVariant, msgID int) int {
	locs := v.Delimiter.FindAllStringIndex(data, msgID+1)
	if msgID >= len(locs) {
		return 1
	}
	return 1 + strings.Count(data[:locs[msgID][0]], "\n")
}

func openInEditor(editor, filePath string, lineNum int) error {
	var cmd *exec.Cmd

	switch {
	case strings.Contains(editor, "vim") || strings.Contains(editor, "nvim"):
		cmd = exec.Command(editor, fmt.Sprintf("+%d", lineNum), filePath)
	case strings.Contains(editor, "code"):
		cmd = exec.Command(editor, "--goto", filePath+":"+strconv.Itoa(lineNum))
	case strings.Contains(editor, "less"):
		cmd = exec.Command(editor, "+"+strconv.Itoa(lineNum), filePath)
	default:
		cmd = exec.Command(editor, filePath)
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
