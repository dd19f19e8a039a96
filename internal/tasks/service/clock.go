package service

import "time"

type clock func() time.Time

func (c clock) now() time.Time {
	if c != nil {
		return c().UTC()
	}
	return time.Now().UTC()
}
