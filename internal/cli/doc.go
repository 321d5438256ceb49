package cli

// Package cli implements the interactive text shell: a prompt loop over
// stdin and survey-driven selection menus. It is a thin front end; all
// decisions about what to offer and how to download live in the session
// and selection packages.
