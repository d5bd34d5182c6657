package auth

import (
	"fmt"
	"io"
	"strings"
)

// ShowSetupGuide writes instructions for obtaining RapidAPI credentials.
func ShowSetupGuide(w io.Writer) {
	line := strings.Repeat("=", 72)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "RAPIDAPI SETUP")
	fmt.Fprintln(w, line)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Live mode reads Instagram profiles through an API hosted on RapidAPI.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "1. Create an account at https://rapidapi.com")
	fmt.Fprintln(w, "2. Subscribe to an Instagram data API (search the hub for \"instagram\")")
	fmt.Fprintln(w, "3. Open the API's Endpoints tab and copy the two request headers:")
	fmt.Fprintln(w, "     X-RapidAPI-Key   your personal key")
	fmt.Fprintln(w, "     X-RapidAPI-Host  for example instagram-scraper-api2.p.rapidapi.com")
	fmt.Fprintln(w, "4. Run 'influencerfinder auth login' and paste them when asked,")
	fmt.Fprintln(w, "   or set RAPIDAPI_KEY and RAPIDAPI_HOST in a .env file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Most free plans do not support hashtag search. When search is")
	fmt.Fprintln(w, "unavailable the server answers 503; switch to demo mode with MODE=demo.")
	fmt.Fprintln(w, line)
}
