package domain

import "fmt"

// ConfigProfile is a named profile from the AWS shared configuration file.
type ConfigProfile struct {
	Name   string
	Region string
}

func (c ConfigProfile) String() string {
	if c.Region == "" {
		return c.Name
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.Region)
}
