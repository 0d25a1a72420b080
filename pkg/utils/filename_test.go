package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "My cool movie.mov", want: "My_cool_movie.mov"},
		{in: "../../../etc/passwd", want: "etc_passwd"},
		{in: `..\..\windows\system32.png`, want: "windows_system32.png"},
		{in: "i contain cool ümläuts.txt", want: "i_contain_cool_umlauts.txt"},
		{in: "  spaced   out.jpg ", want: "spaced_out.jpg"},
		{in: "weird<>:|?*name.png", want: "weirdname.png"},
		{in: "._hidden.gif", want: "hidden.gif"},
		{in: "con.png", want: "_con.png"},
		{in: "日本語", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SecureFilename(tt.in))
		})
	}
}

func TestAllowedFile(t *testing.T) {
	allowed := []string{"jpg", "jpeg", "png", ".gif"}

	assert.True(t, AllowedFile("photo.jpg", allowed))
	assert.True(t, AllowedFile("PHOTO.PNG", allowed))
	assert.True(t, AllowedFile("anim.gif", allowed))
	assert.True(t, AllowedFile("archive.tar.jpeg", allowed))
	assert.False(t, AllowedFile("script.sh", allowed))
	assert.False(t, AllowedFile("noextension", allowed))
	assert.False(t, AllowedFile("trailingdot.", allowed))
	assert.False(t, AllowedFile("photo.jpg", nil))
}
