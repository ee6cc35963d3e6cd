package main

import (
	"crypto/rand" // Cryptographically secure randomness
	"fmt"         // Console output
	"math/big"    // Big integers for rand.Int
	"strings"     // Banner construction

	"github.com/sirupsen/logrus" // Logging library
)

// Key generation parameters
const (
	keyLength = 32                                                               // Generated key length
	alphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789" // Allowed characters
)

// generateAPIKey builds a random alphanumeric API key of the given length
func generateAPIKey(length int) (string, error) {
	max := big.NewInt(int64(len(alphabet))) // Upper bound for the index draw
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max) // Draw a random index
		if err != nil {
			return "", err // Entropy source failure
		}
		b.WriteByte(alphabet[n.Int64()]) // Append the chosen character
	}
	return b.String(), nil
}

// Main entry point for API key generation
func main() {
	key, err := generateAPIKey(keyLength) // Generate a fresh key
	if err != nil {
		logrus.Fatalf("failed to generate API key: %v", err) // Fatal error if randomness fails
	}
	banner := strings.Repeat("=", 50) // Separator line
	fmt.Println("\n" + banner)
	fmt.Println("TU NUEVA API KEY GENERADA:")
	fmt.Println(banner)
	fmt.Printf("\n%s\n\n", key)
	fmt.Println(banner)
	fmt.Println("Instrucciones:")
	fmt.Println("1. Copia esta clave.")
	fmt.Println("2. Pégala en tu archivo .env: API_KEY=tu-clave-copiada")
	fmt.Println("3. Úsala en el header 'X-API-Key' de tus peticiones.")
	fmt.Println(banner + "\n")
}
