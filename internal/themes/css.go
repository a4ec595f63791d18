// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"

	"github.com/platefront/platefront/internal/palette"
)

// GenerateThemeCSS renders the preview stylesheet for a palette. Page
// stylesheets bind to the three custom properties; the header and
// button rules carry the two direct style effects of a theme apply.
func GenerateThemeCSS(p palette.Palette) string {
	return fmt.Sprintf(`:root {
  --preview-primary: %s;
  --preview-secondary: %s;
  --preview-accent: %s;
}

.preview-header {
  background-color: var(--preview-primary);
  color: #ffffff;
  padding: 16px 24px;
}

.preview-button {
  background-color: var(--preview-accent);
  color: #ffffff;
  border: none;
  padding: 8px 16px;
  border-radius: 4px;
  cursor: pointer;
  transition: opacity 0.2s;
}

.preview-button:hover {
  opacity: 0.9;
}

.preview-accent-text {
  color: var(--preview-secondary);
}

a.preview-link {
  color: var(--preview-primary);
  text-decoration: none;
}

a.preview-link:hover {
  text-decoration: underline;
}
`, p.Primary, p.Secondary, p.Accent)
}
