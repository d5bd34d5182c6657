package session

import errs "influencerfinder/pkg/errors"

// ErrNoSession is returned when a command needs results but none were saved.
var ErrNoSession = errs.New(errs.ErrorTypeNotFound, "no saved search results; run a search first")
