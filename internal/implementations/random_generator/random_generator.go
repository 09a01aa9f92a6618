package randomgenerator

import (
	"fmt"
	"math/rand"
	"shopapi/internal/core/domain/user"
	"time"
)

type Generator struct {
	chars []rune
}

func NewGenerator() *Generator {
	rand.Seed(time.Now().UnixNano())
	return &Generator{
		chars: []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"),
	}
}

// GenerateVerificationCode returns a 6-digit code in [100000, 999999].
func (g *Generator) GenerateVerificationCode() string {
	return fmt.Sprintf("%d", 100000+rand.Intn(900000))
}

func (g *Generator) GenerateSessionToken() user.SessionToken {
	b := make([]rune, 32)
	for i := range b {
		b[i] = g.chars[rand.Intn(len(g.chars))]
	}
	return user.SessionToken(b)
}
