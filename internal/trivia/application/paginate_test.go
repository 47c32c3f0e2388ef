package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginate_PageSizes(t *testing.T) {
	for _, length := range []int{1, 9, 10, 11, 19, 20, 23, 100} {
		items := sequence(length)
		pages := (length + QuestionsPerPage - 1) / QuestionsPerPage

		for page := 1; page <= pages; page++ {
			want := min(QuestionsPerPage, length-(page-1)*QuestionsPerPage)
			got := Paginate(items, page, QuestionsPerPage)
			assert.Len(t, got, want, "length %d page %d", length, page)
			assert.Equal(t, (page-1)*QuestionsPerPage+1, got[0])
		}

		beyond := Paginate(items, pages+1, QuestionsPerPage)
		assert.NotNil(t, beyond)
		assert.Empty(t, beyond, "length %d page %d", length, pages+1)
	}
}

func TestPaginate_EdgeCases(t *testing.T) {
	assert.Empty(t, Paginate([]int{}, 1, QuestionsPerPage))
	assert.Equal(t, []int{1, 2}, Paginate([]int{1, 2}, 0, QuestionsPerPage))
	assert.Equal(t, []int{1, 2}, Paginate([]int{1, 2}, -3, QuestionsPerPage))
	assert.Empty(t, Paginate([]int{1, 2}, 1, 0))
	assert.Empty(t, Paginate(sequence(30), 1000, QuestionsPerPage))
}

func TestPaginate_DoesNotAlias(t *testing.T) {
	items := sequence(5)
	page := Paginate(items, 1, 2)
	page[0] = 99

	assert.Equal(t, 1, items[0])
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 3, ParsePage("3"))
	assert.Equal(t, 1000, ParsePage("1000"))
}
