package catalog

// GraphQL documents for the remote catalog service. The search endpoint is
// full-text and returns raw index hits; everything else is a plain
// relational query or mutation.

const searchQuery = `
query BookSearch($query: String!, $perPage: Int!) {
  search(query: $query, query_type: "Book", per_page: $perPage) {
    results
  }
}`

const bookDetailsQuery = `
query BookDetails($id: Int!) {
  books(where: { id: { _eq: $id } }, limit: 1) {
    id
    title
    description
    release_date
    pages
    users_count
    image {
      url
    }
    editions {
      image {
        url
      }
    }
    contributions {
      author {
        name
      }
    }
  }
}`

const addToShelfMutation = `
mutation AddToShelf($object: UserBookCreateInput!) {
  insert_user_book(object: $object) {
    id
  }
}`

const userBookForBookQuery = `
query UserBookForBook($bookId: Int!) {
  user_books(where: { book_id: { _eq: $bookId } }, limit: 1) {
    id
  }
}`

const removeFromShelfMutation = `
mutation RemoveFromShelf($id: Int!) {
  delete_user_book(id: $id) {
    id
  }
}`

const shelfByStatusQuery = `
query ShelfByStatus($userId: uuid!, $status: Int!, $limit: Int!) {
  user_books(
    where: { user_id: { _eq: $userId }, status_id: { _eq: $status } }
    order_by: { updated_at: desc }
    limit: $limit
  ) {
    book {
      id
      title
      contributions {
        author {
          name
        }
      }
    }
  }
}`
