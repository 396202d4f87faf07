package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"airplane-seating/seating"
)

var menuItems = []string{
	"1 - Display seating plan",
	"2 - Book a seat",
	"0 - Exit",
}

// Console reads answers from the terminal with promptui.
type Console struct {
	registry *seating.Registry
}

func NewConsole(registry *seating.Registry) *Console {
	return &Console{registry: registry}
}

func (c *Console) Menu() (string, error) {
	selectMenu := promptui.Select{
		Label: "Menu",
		Items: menuItems,
		Size:  len(menuItems),
	}
	_, choice, err := selectMenu.Run()
	if err != nil {
		return "", err
	}
	return strings.SplitN(choice, " ", 2)[0], nil
}

func (c *Console) Class() (string, error) {
	prompt := promptui.Prompt{
		Label:    classLabel(c.registry),
		Validate: validateClass(c.registry),
	}
	return prompt.Run()
}

func (c *Console) Seat() (string, error) {
	prompt := promptui.Prompt{
		Label:    "Enter desired seat (examples: 1A, 10F)",
		Validate: validateSeat,
	}
	return prompt.Run()
}

func classLabel(registry *seating.Registry) string {
	var parts []string
	for _, class := range registry.All() {
		parts = append(parts, fmt.Sprintf("%c - %s Class (%s)", class.Code, class.Name, class.RangeLabel()))
	}
	return "Ticket type [" + strings.Join(parts, ", ") + "]"
}

func validateClass(registry *seating.Registry) promptui.ValidateFunc {
	return func(input string) error {
		if _, err := registry.LookupString(firstField(input)); err != nil {
			return errors.New(seating.Message(err))
		}
		return nil
	}
}

func validateSeat(input string) error {
	if _, err := seating.ParseSeat(firstField(input)); err != nil {
		return errors.New(seating.Message(err))
	}
	return nil
}
