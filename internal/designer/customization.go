package designer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ryzadigital/igripps/internal/pricing"
)

// MaxClubNameLen is the knitting limit for the club name.
const MaxClubNameLen = 10

var (
	ErrUnknownColor      = errors.New("color is not in the palette")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInvalidSize       = errors.New("size is not a known size band")
	ErrInvalidTransition = errors.New("invalid designer phase transition")
)

// Customization is one visitor's in-progress sock design. Color fields hold
// PMS codes that always resolve in the palette; ClubName is always uppercase
// and at most MaxClubNameLen characters. Both are enforced in Update, so a
// stored Customization is never invalid.
type Customization struct {
	ProductID     string                `json:"productId"`
	SockColor     string                `json:"sockColor"`
	ClubNameColor string                `json:"clubNameColor"`
	GripColor     string                `json:"gripColor"`
	ClubName      string                `json:"clubName"`
	LogoPosition  pricing.LogoPosition  `json:"logoPosition"`
	HasGripSole   bool                  `json:"hasGripSole"`
	Size          string                `json:"size"`
	Quantity      int                   `json:"quantity"`
}

// Changes carries a partial update; nil fields are left untouched.
type Changes struct {
	ProductID     *string               `json:"productId,omitempty"`
	SockColor     *string               `json:"sockColor,omitempty"`
	ClubNameColor *string               `json:"clubNameColor,omitempty"`
	GripColor     *string               `json:"gripColor,omitempty"`
	ClubName      *string               `json:"clubName,omitempty"`
	LogoPosition  *pricing.LogoPosition `json:"logoPosition,omitempty"`
	HasGripSole   *bool                 `json:"hasGripSole,omitempty"`
	Size          *string               `json:"size,omitempty"`
	Quantity      *int                  `json:"quantity,omitempty"`
}

// NewCustomization returns the default design for a fresh session.
func NewCustomization(productID string) Customization {
	return Customization{
		ProductID:     productID,
		SockColor:     DefaultSockColor,
		ClubNameColor: DefaultClubNameColor,
		GripColor:     DefaultGripColor,
		ClubName:      "",
		LogoPosition:  pricing.LogoAnkle,
		HasGripSole:   true,
		Size:          SizeMixed,
		Quantity:      20,
	}
}

// Update merges ch into c, enforcing every field constraint at the mutation
// boundary. On error c is left unchanged.
func (c *Customization) Update(ch Changes) error {
	next := *c

	if ch.ProductID != nil {
		next.ProductID = *ch.ProductID
	}
	if ch.SockColor != nil {
		if err := resolveColor(*ch.SockColor); err != nil {
			return fmt.Errorf("sock color: %w", err)
		}
		next.SockColor = *ch.SockColor
	}
	if ch.ClubNameColor != nil {
		if err := resolveColor(*ch.ClubNameColor); err != nil {
			return fmt.Errorf("club name color: %w", err)
		}
		next.ClubNameColor = *ch.ClubNameColor
	}
	if ch.GripColor != nil {
		if err := resolveColor(*ch.GripColor); err != nil {
			return fmt.Errorf("grip color: %w", err)
		}
		// Retained even while hasGripSole is off so re-toggling does not
		// lose the chosen color.
		next.GripColor = *ch.GripColor
	}
	if ch.ClubName != nil {
		next.ClubName = NormalizeClubName(*ch.ClubName)
	}
	if ch.LogoPosition != nil {
		if !pricing.ValidLogoPosition(*ch.LogoPosition) {
			return pricing.ErrInvalidLogoPosition
		}
		next.LogoPosition = *ch.LogoPosition
	}
	if ch.HasGripSole != nil {
		next.HasGripSole = *ch.HasGripSole
	}
	if ch.Size != nil {
		if !ValidSize(*ch.Size) {
			return fmt.Errorf("%w: %q", ErrInvalidSize, *ch.Size)
		}
		next.Size = *ch.Size
	}
	if ch.Quantity != nil {
		if *ch.Quantity < 1 {
			return ErrInvalidQuantity
		}
		next.Quantity = *ch.Quantity
	}

	*c = next
	return nil
}

// NormalizeClubName upcases and truncates to MaxClubNameLen characters.
func NormalizeClubName(name string) string {
	upper := strings.ToUpper(name)
	runes := []rune(upper)
	if len(runes) > MaxClubNameLen {
		runes = runes[:MaxClubNameLen]
	}
	return string(runes)
}

// Estimate prices the current design. GripColor never affects the price;
// only the grip toggle does.
func (c *Customization) Estimate() (int, error) {
	return pricing.Estimate(pricing.Options{
		HasGripSole:  c.HasGripSole,
		LogoPosition: c.LogoPosition,
		Quantity:     c.Quantity,
	})
}

func resolveColor(pms string) error {
	palette, err := LoadPalette()
	if err != nil {
		return err
	}
	if _, ok := palette.ByPMS(pms); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColor, pms)
	}
	return nil
}
