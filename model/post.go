package model

import (
	"time"
)

/*

Post is one unit of scraped forum content

PostId: stable platform-assigned id, primary key
Title: post's title in plain text
Body: post's self text in plain text, may be empty
Author: platform username, "[deleted]" when the account is gone
Subreddit: community the post was scraped from
Score, NumComments: engagement metadata at scrape time
CreatedUtc: post creation time on the platform, UTC
PostUrl: permalink back to the platform
ScrapedAt: time when we first stored the post

A post is written once by the scraper and never mutated afterwards.
Classification and tech stack rows reference it by PostId.
*/
type Post struct {
	PostId      string    `gorm:"primaryKey" json:"post_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Author      string    `json:"author"`
	Subreddit   string    `gorm:"index" json:"subreddit"`
	Score       int       `json:"score"`
	NumComments int       `json:"num_comments"`
	CreatedUtc  time.Time `json:"created_utc"`
	PostUrl     string    `json:"post_url"`
	ScrapedAt   time.Time `gorm:"autoCreateTime" json:"scraped_at"`
}
