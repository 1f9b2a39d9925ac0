package entities

import (
	"time"
)

type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeEPUB FileType = "epub"
	FileTypeTXT  FileType = "txt"
	FileTypeDOC  FileType = "doc"
)

type BookSource string

const (
	BookSourceLocal        BookSource = "local"
	BookSourceAnnasArchive BookSource = "annas_archive"
	BookSourceAffiliate    BookSource = "affiliate"
)

type Tier string

const (
	TierFree    Tier = "free"
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
	TierPro     Tier = "pro"
)

type TTSMode string

const (
	TTSModeOffline TTSMode = "offline"
	TTSModeOnline  TTSMode = "online"
)

type TTSVoice string

const (
	TTSVoiceRobotic TTSVoice = "robotic"
	TTSVoiceNatural TTSVoice = "natural"
)

type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeSepia Theme = "sepia"
)

// Category groups books on the library shelf. Five defaults are seeded on
// first run and are never removed automatically.
type Category struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"index;size:100" json:"name"`
	Icon      string    `gorm:"size:50" json:"icon"`
	Color     string    `gorm:"size:10" json:"color"` // Hex color code
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Book struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Title        string     `gorm:"index;size:512" json:"title"`
	Author       string     `gorm:"index;size:256" json:"author,omitempty"`
	FilePath     string     `gorm:"size:1024" json:"file_path"`
	CoverImage   string     `gorm:"size:2048" json:"cover_image,omitempty"`
	LastPageRead int        `json:"last_page_read"`
	TotalPages   int        `json:"total_pages"`
	CategoryID   *string    `gorm:"index;size:36" json:"category_id,omitempty"`
	GenreTags    StringList `gorm:"type:text" json:"genre_tags"`
	FileType     FileType   `gorm:"size:10;default:'txt'" json:"file_type"`
	IsCompleted  BoolFlag   `gorm:"type:integer;default:0" json:"is_completed"`
	IsFavorite   BoolFlag   `gorm:"type:integer;default:0" json:"is_favorite"`
	Source       BookSource `gorm:"size:20;default:'local'" json:"source"`
	Price        *float64   `json:"price,omitempty"`
	AffiliateURL string     `gorm:"size:2048" json:"affiliate_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Note struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	BookID    string    `gorm:"index;size:36" json:"book_id"`
	Content   string    `gorm:"type:text" json:"content"`
	Page      int       `json:"page"`
	Chapter   string    `gorm:"size:256" json:"chapter,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatMessage is one question/answer exchange with the AI assistant.
// The log is append-only per book; rows are only removed by a bulk clear.
type ChatMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	BookID    string    `gorm:"index;size:36" json:"book_id"`
	Question  string    `gorm:"type:text" json:"question"`
	Answer    string    `gorm:"type:text" json:"answer"`
	Page      *int      `json:"page,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSubscription is a singleton row (ID is always SingletonID). Upgrade
// and cancel replace the whole record rather than patching columns.
type UserSubscription struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	Tier          Tier       `gorm:"size:20;default:'free'" json:"tier"`
	Price         float64    `json:"price"`
	Features      StringList `gorm:"type:text" json:"features"`
	BooksPerMonth int        `json:"books_per_month"`
	HasAI         BoolFlag   `gorm:"type:integer;default:0" json:"has_ai"`
	HasNaturalTTS BoolFlag   `gorm:"type:integer;default:0" json:"has_natural_tts"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AppSettings is a singleton row (ID is always SingletonID).
type AppSettings struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TTSMode   TTSMode   `gorm:"size:20;default:'offline'" json:"tts_mode"`
	TTSVoice  TTSVoice  `gorm:"size:20;default:'robotic'" json:"tts_voice"`
	FontSize  FontSize  `gorm:"size:20;default:'medium'" json:"font_size"`
	Theme     Theme     `gorm:"size:20;default:'light'" json:"theme"`
	AutoSync  BoolFlag  `gorm:"type:integer;default:0" json:"auto_sync"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SingletonID is the fixed primary key of the subscription and settings rows.
const SingletonID = "1"

func (Category) TableName() string {
	return "categories"
}

func (Book) TableName() string {
	return "books"
}

func (Note) TableName() string {
	return "notes"
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

func (UserSubscription) TableName() string {
	return "user_subscriptions"
}

func (AppSettings) TableName() string {
	return "app_settings"
}
