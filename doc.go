// Package main provides the entry point for the sitecms application.
// It initializes and runs a web server using the Fiber framework that serves
// the Olatundun care center marketing site, an admin dashboard and a JSON
// settings API through which every text and image field of the site can be
// edited. The application uses gorm for data persistence and stores all
// editable content as key-value settings rows.
package main
