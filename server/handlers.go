package server

import (
	"tweeter/handler"
)

type Handlers struct {
	Tweet *handler.Tweet
	Media *handler.Media
	Like  *handler.Like
	User  *handler.User
}
