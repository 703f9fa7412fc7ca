package domain

import "testing"

func TestPost_LikedBy(t *testing.T) {
	post := &Post{Likes: []Like{{UserID: "user1"}, {UserID: "user2"}}}

	if !post.LikedBy("user1") {
		t.Fatal("expected user1 to be a liker")
	}
	if post.LikedBy("user3") {
		t.Fatal("user3 has not liked the post")
	}

	empty := &Post{}
	if empty.LikedBy("user1") {
		t.Fatal("empty post has no likers")
	}
}
