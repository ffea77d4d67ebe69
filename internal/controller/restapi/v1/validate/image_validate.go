package validate

const (
	// MaxFileSize caps uploads at 10 MiB; exactly 10 MiB is still accepted.
	MaxFileSize int64 = 10 * 1024 * 1024
)

var AllowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}
