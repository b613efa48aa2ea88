// Package strategy holds the category strategies shared by every caller of
// the organizer: extension/MIME, creation date, filename pattern and the
// collaborator-backed AI strategy.
package strategy

import (
	"strings"

	"fileorg/internal/model"
)

// Other is the label of files no rule recognises.
const Other = "Other"

var extensionCategories = map[string]string{
	// Documents
	"pdf":  "Documents",
	"doc":  "Documents",
	"docx": "Documents",
	"txt":  "Documents",
	"rtf":  "Documents",
	"odt":  "Documents",
	"md":   "Documents",

	"ppt":  "Presentations",
	"pptx": "Presentations",
	"odp":  "Presentations",
	"key":  "Presentations",

	"xls":  "Spreadsheets",
	"xlsx": "Spreadsheets",
	"ods":  "Spreadsheets",
	"csv":  "Spreadsheets",

	// Images
	"jpg":  "Images",
	"jpeg": "Images",
	"png":  "Images",
	"gif":  "Images",
	"bmp":  "Images",
	"svg":  "Images",
	"tif":  "Images",
	"tiff": "Images",
	"webp": "Images",
	"heic": "Images",

	// Videos
	"mp4":  "Videos",
	"mov":  "Videos",
	"avi":  "Videos",
	"mkv":  "Videos",
	"flv":  "Videos",
	"wmv":  "Videos",
	"webm": "Videos",

	// Audio
	"mp3":  "Audio",
	"wav":  "Audio",
	"ogg":  "Audio",
	"flac": "Audio",
	"aac":  "Audio",
	"wma":  "Audio",
	"m4a":  "Audio",

	// Archives
	"zip": "Archives",
	"rar": "Archives",
	"7z":  "Archives",
	"tar": "Archives",
	"gz":  "Archives",
	"bz2": "Archives",
	"xz":  "Archives",

	// Code
	"py":    "Code",
	"js":    "Code",
	"ts":    "Code",
	"html":  "Code",
	"css":   "Code",
	"java":  "Code",
	"cpp":   "Code",
	"c":     "Code",
	"h":     "Code",
	"php":   "Code",
	"rb":    "Code",
	"go":    "Code",
	"rs":    "Code",
	"swift": "Code",
	"json":  "Code",
	"xml":   "Code",
	"yaml":  "Code",
	"yml":   "Code",

	// Executables
	"exe": "Executables",
	"msi": "Executables",
	"app": "Executables",
	"bat": "Executables",
	"sh":  "Executables",
	"apk": "Executables",
	"deb": "Executables",

	"torrent": "Downloads",

	"iso": "Disk Images",
	"dmg": "Disk Images",
	"img": "Disk Images",
}

// mimeRule maps a MIME type prefix to a category. Rules are checked in order.
type mimeRule struct {
	prefix   string
	category string
}

var mimeRules = []mimeRule{
	{"image/", "Images"},
	{"video/", "Videos"},
	{"audio/", "Audio"},
	{"text/", "Documents"},
	{"application/pdf", "Documents"},
	{"application/msword", "Documents"},
	{"application/vnd.openxmlformats-officedocument.wordprocessingml", "Documents"},
	{"application/vnd.oasis.opendocument.text", "Documents"},
	{"application/vnd.ms-excel", "Spreadsheets"},
	{"application/vnd.openxmlformats-officedocument.spreadsheetml", "Spreadsheets"},
	{"application/vnd.oasis.opendocument.spreadsheet", "Spreadsheets"},
	{"application/vnd.ms-powerpoint", "Presentations"},
	{"application/vnd.openxmlformats-officedocument.presentationml", "Presentations"},
	{"application/vnd.oasis.opendocument.presentation", "Presentations"},
	{"application/zip", "Archives"},
	{"application/x-rar", "Archives"},
	{"application/x-7z", "Archives"},
	{"application/x-tar", "Archives"},
	{"application/gzip", "Archives"},
}

// ByExtension classifies a record by its extension, then by MIME family,
// and finally returns Other. It never fails.
func ByExtension(r model.FileRecord) string {
	if c, ok := extensionCategories[strings.ToLower(r.Extension)]; ok {
		return c
	}
	mt := strings.ToLower(r.MIMEType)
	if mt == "" {
		return Other
	}
	for _, rule := range mimeRules {
		if strings.HasPrefix(mt, rule.prefix) {
			return rule.category
		}
	}
	return Other
}
