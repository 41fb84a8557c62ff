package uci

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Option interface {
	UciName() string
	UciString() string
	Set(s string) error
}

type BoolOption struct {
	Name  string
	Value *bool
}

func (opt *BoolOption) UciName() string {
	return opt.Name
}

func (opt *BoolOption) UciString() string {
	return fmt.Sprintf("option name %v type %v default %v",
		opt.Name, "check", *opt.Value)
}

func (opt *BoolOption) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*opt.Value = v
	return nil
}

type IntOption struct {
	Name  string
	Min   int
	Max   int
	Value *int
}

func (opt *IntOption) UciName() string {
	return opt.Name
}

func (opt *IntOption) UciString() string {
	return fmt.Sprintf("option name %v type %v default %v min %v max %v",
		opt.Name, "spin", *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < opt.Min || v > opt.Max {
		return errors.New("argument out of range")
	}
	*opt.Value = v
	return nil
}

// StringOption treats the literal "none" (any case) as unset, matching
// how GUIs clear string options.
type StringOption struct {
	Name  string
	Value *string
}

func (opt *StringOption) UciName() string {
	return opt.Name
}

func (opt *StringOption) UciString() string {
	var value = *opt.Value
	if value == "" {
		value = "none"
	}
	return fmt.Sprintf("option name %v type %v default %v",
		opt.Name, "string", value)
}

func (opt *StringOption) Set(s string) error {
	if strings.EqualFold(s, "none") {
		*opt.Value = ""
	} else {
		*opt.Value = s
	}
	return nil
}

type ComboOption struct {
	Name  string
	Value *string
	Vars  []string
}

func (opt *ComboOption) UciName() string {
	return opt.Name
}

func (opt *ComboOption) UciString() string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "option name %v type %v default %v",
		opt.Name, "combo", *opt.Value)
	for _, v := range opt.Vars {
		fmt.Fprintf(sb, " var %v", v)
	}
	return sb.String()
}

func (opt *ComboOption) Set(s string) error {
	for _, v := range opt.Vars {
		if strings.EqualFold(v, s) {
			*opt.Value = v
			return nil
		}
	}
	return errors.New("argument out of range")
}
