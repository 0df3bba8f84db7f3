package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Akash7367/chatlens/internal/parse"
	"github.com/Akash7367/chatlens/internal/scan"
)

type Stats struct {
	Scanned int
	Updated int
	Skipped int
	Pruned  int
	Errors  int
}

func (s Stats) String() string {
	return fmt.Sprintf("scanned=%d updated=%d skipped=%d pruned=%d errors=%d",
		s.Scanned, s.Updated, s.Skipped, s.Pruned, s.Errors)
}

// ChatKey derives the store key from an export file name.
func ChatKey(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".txt")
}

// ImportFile parses one exported transcript and stores its record set,
// replacing any previous import of the same chat. Returns the chat key and
// the number of stored records.
func ImportFile(db *DB, path string) (string, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("read export: %w", err)
	}
	if !parse.LooksLikeExport(string(data)) {
		return "", 0, fmt.Errorf("%s does not look like a WhatsApp chat export", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", 0, err
	}

	variant := parse.Detect(string(data))
	msgs := parse.ParseWith(string(data), variant)
	key := ChatKey(path)

	if err := storeChat(db, key, path, variant.Name, msgs, info.ModTime().Unix(), info.Size()); err != nil {
		return "", 0, fmt.Errorf("store chat: %w", err)
	}
	return key, len(msgs), nil
}

// ImportAll walks the export root, imports new or changed exports, and
// prunes chats whose files no longer exist.
func ImportAll(db *DB, root string) (Stats, error) {
	var stats Stats

	files, err := scan.Exports(root)
	if err != nil {
		return stats, fmt.Errorf("scan: %w", err)
	}
	stats.Scanned = len(files)

	for _, fi := range files {
		needs, err := needsUpdate(db, ChatKey(fi.Path), fi.Mtime, fi.Size)
		if err != nil {
			stats.Errors++
			continue
		}
		if !needs {
			stats.Skipped++
			continue
		}
		if _, _, err := ImportFile(db, fi.Path); err != nil {
			stats.Errors++
			fmt.Printf("  WARN: import %s: %v\n", fi.Path, err)
			continue
		}
		stats.Updated++
	}

	pruned, err := pruneChats(db)
	if err != nil {
		return stats, fmt.Errorf("prune: %w", err)
	}
	stats.Pruned = pruned

	return stats, nil
}

func needsUpdate(db *DB, chatKey string, mtime, size int64) (bool, error) {
	info, err := db.GetChatInfo(chatKey)
	if err != nil {
		return false, err
	}
	if info == nil {
		return true, nil // new chat
	}
	return info.Mtime != mtime || info.Size != size, nil
}

func storeChat(db *DB, key, path, format string, msgs []parse.Message, mtime, size int64) error {
	// delete old data first
	if err := db.DeleteChat(key); err != nil {
		return err
	}

	tx, err := db.Raw().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var firstTS, lastTS string
	if len(msgs) > 0 {
		firstTS = msgs[0].Timestamp.Format(tsLayout)
		lastTS = msgs[len(msgs)-1].Timestamp.Format(tsLayout)
	}

	_, err = tx.Exec(
		`INSERT INTO chats (chat_key, file_path, format, first_ts, last_ts, message_count, mtime, size)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		key, path, format, firstTS, lastTS, len(msgs), mtime, size,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO messages (chat_key, msg_id, ts, author, text) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, m := range msgs {
		if _, err := stmt.Exec(key, i, m.Timestamp.Format(tsLayout), m.Author, m.Body); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// pruneChats drops chats whose source file has disappeared.
func pruneChats(db *DB) (int, error) {
	chats, err := db.ListChats()
	if err != nil {
		return 0, err
	}

	pruned := 0
	for _, c := range chats {
		if _, err := os.Stat(c.FilePath); os.IsNotExist(err) {
			if err := db.DeleteChat(c.ChatKey); err != nil {
				return pruned, err
			}
			pruned++
		}
	}
	return pruned, nil
}
