package upstream

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

func bytesReader(s string) io.Reader {
	return strings.NewReader(s)
}

func decodeJSONBody(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}
