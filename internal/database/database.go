package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/toolvault/toolvault/internal/entities"
)

// defaultBookmarks is the catalog inserted into an empty store on first run.
var defaultBookmarks = []entities.Bookmark{
	{Name: "Canva", URL: "https://www.canva.com", Description: "Design anything — social media graphics, presentations, posters & more.", Logo: "https://img.icons8.com/fluency/96/canva.png"},
	{Name: "ChatGPT", URL: "https://chat.openai.com", Description: "AI-powered assistant for writing, coding and brainstorming.", Logo: "https://img.icons8.com/fluency/96/chatgpt.png"},
	{Name: "Freepik", URL: "https://www.freepik.com", Description: "Free vectors, photos, PSD and icons for your projects.", Logo: "https://img.icons8.com/fluency/96/freepik.png"},
	{Name: "GitHub", URL: "https://github.com", Description: "Code hosting platform for version control and collaboration.", Logo: "https://img.icons8.com/fluency/96/github.png"},
	{Name: "Figma", URL: "https://www.figma.com", Description: "Collaborative interface design tool for teams.", Logo: "https://img.icons8.com/fluency/96/figma.png"},
	{Name: "Notion", URL: "https://www.notion.so", Description: "All-in-one workspace for notes, docs, and project management.", Logo: "https://img.icons8.com/fluency/96/notion.png"},
	{Name: "Cobalt Tools", URL: "https://cobalt.tools/settings/video", Description: "Media downloader — save videos and audio from popular platforms.", Logo: "https://cobalt.tools/favicon.ico"},
	{Name: "Gemini", URL: "https://gemini.google.com", Description: "Google's AI assistant for creative and productive tasks.", Logo: "https://www.gstatic.com/lamda/images/gemini_favicon_f069958c85030456e93de685.png"},
	{Name: "NotebookLM", URL: "https://notebooklm.google.com", Description: "AI-powered research and note-taking tool by Google.", Logo: "https://notebooklm.google.com/favicon.ico"},
	{Name: "Grok", URL: "https://grok.com", Description: "xAI's conversational AI with real-time knowledge.", Logo: "https://grok.com/images/favicon.ico"},
	{Name: "Claude", URL: "https://claude.ai", Description: "Anthropic's helpful, harmless, and honest AI assistant.", Logo: "https://claude.ai/favicon.ico"},
	{Name: "Kimi", URL: "https://kimi.moonshot.cn", Description: "Moonshot AI's intelligent assistant with long-context support.", Logo: "https://kimi.moonshot.cn/favicon.ico"},
	{Name: "Google AI Studio", URL: "https://aistudio.google.com", Description: "Prototype and build with Google's generative AI models.", Logo: "https://aistudio.google.com/favicon.ico"},
	{Name: "OpenClaw", URL: "https://openclaw.com", Description: "Open-source AI tools and resources platform.", Logo: "https://openclaw.com/favicon.ico"},
	{Name: "DeepSeek", URL: "https://chat.deepseek.com", Description: "Advanced AI assistant for coding, math, and reasoning.", Logo: "https://chat.deepseek.com/favicon.ico"},
}

// Database wraps the single gorm connection shared by all requests.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the sqlite database, migrates the schema and seeds
// the default catalog when the store is empty. It is called exactly once
// per process; the returned handle serves every request.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Bookmark{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.EnsureSeeded(); err != nil {
		return nil, fmt.Errorf("failed to seed bookmarks: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureSeeded inserts the default bookmarks if and only if the store is
// empty. The count check and the insert run inside one transaction so two
// concurrent first-time callers cannot both observe zero and double-seed.
func (d *Database) EnsureSeeded() error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Bookmark{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		seed := make([]entities.Bookmark, len(defaultBookmarks))
		copy(seed, defaultBookmarks)
		if err := tx.Create(&seed).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d default bookmarks", len(seed))
		return nil
	})
}

// DefaultBookmarkCount reports the size of the built-in seed catalog.
func DefaultBookmarkCount() int {
	return len(defaultBookmarks)
}
