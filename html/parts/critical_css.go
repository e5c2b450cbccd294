package parts

import (
	"log"
	"os"
)

// GetCriticalCSS reads the storefront CSS file and returns it as a string
// for inlining into the page head.
func GetCriticalCSS() (string, error) {
	css, err := os.ReadFile("assets/storefront.css")
	if err != nil {
		log.Println("Critical CSS error:", err)
		return "", err
	}
	return string(css), nil
}
