package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements sitecontent.Store using PostgreSQL
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL store
func New(db DBTX) sitecontent.Store {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL store with connection pool
func NewWithPool(pool *pgxpool.Pool) sitecontent.Store {
	return &Repository{db: pool}
}

// handlePostgresError maps low-level database errors onto the package's
// sentinel errors. Unique violations become ErrDuplicateName so the service
// layer can resolve and retry.
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return sitecontent.ErrDuplicateName
		case "23503": // foreign_key_violation
			return fmt.Errorf("referenced record not found")
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}
	return fmt.Errorf("database error in %s: %w", operation, err)
}

// condBuilder accumulates WHERE conditions with positional args. Each expr
// contains one %d placeholder for the arg position.
type condBuilder struct {
	conds []string
	args  []interface{}
}

func (b *condBuilder) add(expr string, arg interface{}) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf(expr, len(b.args)))
}

func (b *condBuilder) addRange(column string, r *sitecontent.DateRange) {
	if r == nil {
		return
	}
	b.add(column+" >= $%d", r.Start)
	b.add(column+" < $%d", r.End)
}

func (b *condBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// orderClause resolves a sort key against a whitelist of real column names.
// Unknown keys fall back to the default column.
func orderClause(columns map[string]string, sortBy, fallback string, order sitecontent.SortOrder) string {
	column, ok := columns[sortBy]
	if !ok {
		column = fallback
	}
	direction := "ASC"
	if order == sitecontent.OrderDesc {
		direction = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", column, direction)
}

func limitClause(offset, limit int) string {
	clause := ""
	if limit > 0 {
		clause += fmt.Sprintf(" LIMIT %d", limit)
	}
	if offset > 0 {
		clause += fmt.Sprintf(" OFFSET %d", offset)
	}
	return clause
}

func scanNewest(row pgx.Row) (*time.Time, error) {
	var t sql.NullTime
	if err := row.Scan(&t); err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, nil
	}
	newest := t.Time
	return &newest, nil
}

// Album operations

const albumColumns = `
	a.id, a.name, a.slug, a.header, a.size, a.creator_id,
	COALESCE(ad.username, ''), a.created_at, a.updated_at`

const albumFrom = ` FROM album a LEFT JOIN admin ad ON ad.id = a.creator_id`

var albumSortColumns = map[string]string{
	"name":       "a.name",
	"created_at": "a.created_at",
	"updated_at": "a.updated_at",
}

func scanAlbum(row pgx.Row) (*sitecontent.Album, error) {
	var album sitecontent.Album
	err := row.Scan(
		&album.ID, &album.Name, &album.Slug, &album.Header, &album.Size,
		&album.CreatorID, &album.Creator, &album.CreatedAt, &album.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func albumConds(f sitecontent.AlbumFilter) *condBuilder {
	b := &condBuilder{}
	if f.Name != "" {
		b.add("a.name ILIKE '%%' || $%d || '%%'", f.Name)
	}
	if f.CreatorID != nil {
		b.add("a.creator_id = $%d", *f.CreatorID)
	}
	b.addRange("a.created_at", f.CreatedIn)
	b.addRange("a.updated_at", f.UpdatedIn)
	return b
}

func (r *Repository) CreateAlbum(ctx context.Context, album *sitecontent.Album) error {
	query := `
		INSERT INTO album (id, name, slug, header, size, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		album.ID, album.Name, album.Slug, album.Header, album.Size,
		album.CreatorID, album.CreatedAt, album.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("create album", err)
	}
	return nil
}

func (r *Repository) GetAlbum(ctx context.Context, id uuid.UUID) (*sitecontent.Album, error) {
	query := `SELECT` + albumColumns + albumFrom + ` WHERE a.id = $1`
	album, err := scanAlbum(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrAlbumNotFound
		}
		return nil, err
	}
	return album, nil
}

func (r *Repository) GetAlbumBySlug(ctx context.Context, slug string) (*sitecontent.Album, error) {
	query := `SELECT` + albumColumns + albumFrom + ` WHERE a.slug = $1`
	album, err := scanAlbum(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrAlbumNotFound
		}
		return nil, err
	}

	album.Media, err = r.ListMedia(ctx, sitecontent.MediaFilter{
		AlbumID: &album.ID,
		SortBy:  "uploaded_at",
		Order:   sitecontent.OrderDesc,
	})
	if err != nil {
		return nil, err
	}
	return album, nil
}

func (r *Repository) ListAlbums(ctx context.Context, f sitecontent.AlbumFilter) ([]*sitecontent.Album, error) {
	b := albumConds(f)
	query := `SELECT` + albumColumns + albumFrom + b.where() +
		orderClause(albumSortColumns, f.SortBy, "a.updated_at", f.Order) +
		limitClause(f.Offset, f.Limit)

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []*sitecontent.Album
	for rows.Next() {
		album, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}
	return albums, rows.Err()
}

func (r *Repository) CountAlbums(ctx context.Context, f sitecontent.AlbumFilter) (int64, error) {
	b := albumConds(f)
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+albumFrom+b.where(), b.args...).Scan(&count)
	return count, err
}

func (r *Repository) NewestAlbumActivity(ctx context.Context, f sitecontent.AlbumFilter) (*time.Time, error) {
	b := albumConds(f)
	return scanNewest(r.db.QueryRow(ctx, `SELECT MAX(a.updated_at)`+albumFrom+b.where(), b.args...))
}

func (r *Repository) ListAlbumMetadata(ctx context.Context) ([]sitecontent.EntityMetadata, error) {
	return r.listMetadata(ctx, `SELECT id, name, slug FROM album ORDER BY name ASC`)
}

func (r *Repository) UpdateAlbum(ctx context.Context, album *sitecontent.Album) error {
	query := `
		UPDATE album SET name = $2, slug = $3, header = $4, size = $5, updated_at = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		album.ID, album.Name, album.Slug, album.Header, album.Size, album.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("update album", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrAlbumNotFound
	}
	return nil
}

func (r *Repository) DeleteAlbum(ctx context.Context, id uuid.UUID) error {
	// Child media rows go via ON DELETE CASCADE.
	tag, err := r.db.Exec(ctx, `DELETE FROM album WHERE id = $1`, id)
	if err != nil {
		return r.handlePostgresError("delete album", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrAlbumNotFound
	}
	return nil
}

func (r *Repository) listMetadata(ctx context.Context, query string) ([]sitecontent.EntityMetadata, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []sitecontent.EntityMetadata
	for rows.Next() {
		var m sitecontent.EntityMetadata
		if err := rows.Scan(&m.ID, &m.Name, &m.Slug); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

// Media operations

const mediaColumns = `
	m.id, m.album_id, m.name, m.slug, m.url, m.size, m.uploader_id,
	COALESCE(ad.username, ''), m.uploaded_at`

const mediaFrom = ` FROM media m LEFT JOIN admin ad ON ad.id = m.uploader_id`

var mediaSortColumns = map[string]string{
	"name":        "m.name",
	"uploaded_at": "m.uploaded_at",
}

func scanMedia(row pgx.Row) (*sitecontent.Media, error) {
	var media sitecontent.Media
	err := row.Scan(
		&media.ID, &media.AlbumID, &media.Name, &media.Slug, &media.URL,
		&media.Size, &media.UploaderID, &media.Uploader, &media.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func mediaConds(f sitecontent.MediaFilter) *condBuilder {
	b := &condBuilder{}
	if f.Name != "" {
		b.add("m.name ILIKE '%%' || $%d || '%%'", f.Name)
	}
	if f.AlbumID != nil {
		b.add("m.album_id = $%d", *f.AlbumID)
	}
	if f.UploaderID != nil {
		b.add("m.uploader_id = $%d", *f.UploaderID)
	}
	b.addRange("m.uploaded_at", f.UploadedIn)
	return b
}

func (r *Repository) CreateMedia(ctx context.Context, media *sitecontent.Media) error {
	query := `
		INSERT INTO media (id, album_id, name, slug, url, size, uploader_id, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		media.ID, media.AlbumID, media.Name, media.Slug, media.URL,
		media.Size, media.UploaderID, media.UploadedAt)
	if err != nil {
		return r.handlePostgresError("create media", err)
	}
	return nil
}

// CreateMediaBatch inserts a whole upload batch in one transaction when the
// underlying DBTX is a pool; otherwise the rows share the caller's
// transaction.
func (r *Repository) CreateMediaBatch(ctx context.Context, items []*sitecontent.Media) error {
	if pool, ok := r.db.(*pgxpool.Pool); ok {
		tx, err := pool.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		txRepo := &Repository{db: tx}
		for _, item := range items {
			if err := txRepo.CreateMedia(ctx, item); err != nil {
				return err
			}
		}
		return tx.Commit(ctx)
	}

	for _, item := range items {
		if err := r.CreateMedia(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) GetMedia(ctx context.Context, id uuid.UUID) (*sitecontent.Media, error) {
	query := `SELECT` + mediaColumns + mediaFrom + ` WHERE m.id = $1`
	media, err := scanMedia(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrMediaNotFound
		}
		return nil, err
	}
	return media, nil
}

func (r *Repository) GetMediaBySlug(ctx context.Context, slug string) (*sitecontent.Media, error) {
	query := `SELECT` + mediaColumns + mediaFrom + ` WHERE m.slug = $1`
	media, err := scanMedia(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrMediaNotFound
		}
		return nil, err
	}
	return media, nil
}

func (r *Repository) ListMedia(ctx context.Context, f sitecontent.MediaFilter) ([]*sitecontent.Media, error) {
	b := mediaConds(f)
	query := `SELECT` + mediaColumns + mediaFrom + b.where() +
		orderClause(mediaSortColumns, f.SortBy, "m.uploaded_at", f.Order) +
		limitClause(f.Offset, f.Limit)

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var media []*sitecontent.Media
	for rows.Next() {
		item, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		media = append(media, item)
	}
	return media, rows.Err()
}

func (r *Repository) CountMedia(ctx context.Context, f sitecontent.MediaFilter) (int64, error) {
	b := mediaConds(f)
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+mediaFrom+b.where(), b.args...).Scan(&count)
	return count, err
}

func (r *Repository) NewestMediaActivity(ctx context.Context, f sitecontent.MediaFilter) (*time.Time, error) {
	b := mediaConds(f)
	return scanNewest(r.db.QueryRow(ctx, `SELECT MAX(m.uploaded_at)`+mediaFrom+b.where(), b.args...))
}

func (r *Repository) MediaNameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM media WHERE name = $1)`, name).Scan(&exists)
	return exists, err
}

func (r *Repository) UpdateMedia(ctx context.Context, media *sitecontent.Media) error {
	query := `
		UPDATE media SET name = $2, slug = $3, url = $4, size = $5,
			uploader_id = $6, uploaded_at = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		media.ID, media.Name, media.Slug, media.URL, media.Size,
		media.UploaderID, media.UploadedAt)
	if err != nil {
		return r.handlePostgresError("update media", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrMediaNotFound
	}
	return nil
}

func (r *Repository) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return r.handlePostgresError("delete media", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrMediaNotFound
	}
	return nil
}

// Blog operations

const blogColumns = `
	b.id, b.title, b.slug, b.content, b.header, b.author_id,
	COALESCE(ad.username, ''), b.created_at, b.updated_at`

const blogFrom = ` FROM blog b LEFT JOIN admin ad ON ad.id = b.author_id`

var blogSortColumns = map[string]string{
	"title":      "b.title",
	"created_at": "b.created_at",
	"updated_at": "b.updated_at",
}

func scanBlog(row pgx.Row) (*sitecontent.Blog, error) {
	var blog sitecontent.Blog
	err := row.Scan(
		&blog.ID, &blog.Title, &blog.Slug, &blog.Content, &blog.Header,
		&blog.AuthorID, &blog.Author, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func blogConds(f sitecontent.BlogFilter) *condBuilder {
	b := &condBuilder{}
	if f.Title != "" {
		b.add("b.title ILIKE '%%' || $%d || '%%'", f.Title)
	}
	if f.AuthorID != nil {
		b.add("b.author_id = $%d", *f.AuthorID)
	}
	b.addRange("b.created_at", f.CreatedIn)
	b.addRange("b.updated_at", f.UpdatedIn)
	return b
}

func (r *Repository) CreateBlog(ctx context.Context, blog *sitecontent.Blog) error {
	query := `
		INSERT INTO blog (id, title, slug, content, header, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		blog.ID, blog.Title, blog.Slug, blog.Content, blog.Header,
		blog.AuthorID, blog.CreatedAt, blog.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("create blog", err)
	}
	return nil
}

func (r *Repository) GetBlog(ctx context.Context, id uuid.UUID) (*sitecontent.Blog, error) {
	query := `SELECT` + blogColumns + blogFrom + ` WHERE b.id = $1`
	blog, err := scanBlog(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

func (r *Repository) GetBlogBySlug(ctx context.Context, slug string) (*sitecontent.Blog, error) {
	query := `SELECT` + blogColumns + blogFrom + ` WHERE b.slug = $1`
	blog, err := scanBlog(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

func (r *Repository) ListBlogs(ctx context.Context, f sitecontent.BlogFilter) ([]*sitecontent.Blog, error) {
	b := blogConds(f)
	query := `SELECT` + blogColumns + blogFrom + b.where() +
		orderClause(blogSortColumns, f.SortBy, "b.updated_at", f.Order) +
		limitClause(f.Offset, f.Limit)

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []*sitecontent.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

func (r *Repository) CountBlogs(ctx context.Context, f sitecontent.BlogFilter) (int64, error) {
	b := blogConds(f)
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+blogFrom+b.where(), b.args...).Scan(&count)
	return count, err
}

func (r *Repository) NewestBlogActivity(ctx context.Context, f sitecontent.BlogFilter) (*time.Time, error) {
	b := blogConds(f)
	return scanNewest(r.db.QueryRow(ctx, `SELECT MAX(b.updated_at)`+blogFrom+b.where(), b.args...))
}

func (r *Repository) UpdateBlog(ctx context.Context, blog *sitecontent.Blog) error {
	query := `
		UPDATE blog SET title = $2, slug = $3, content = $4, header = $5, updated_at = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		blog.ID, blog.Title, blog.Slug, blog.Content, blog.Header, blog.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("update blog", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrBlogNotFound
	}
	return nil
}

func (r *Repository) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog WHERE id = $1`, id)
	if err != nil {
		return r.handlePostgresError("delete blog", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrBlogNotFound
	}
	return nil
}

// Document operations

const documentColumns = `
	d.id, d.name, d.slug, d.url, d.size, d.category, d.uploader_id,
	COALESCE(ad.username, ''), d.uploaded_at`

const documentFrom = ` FROM document d LEFT JOIN admin ad ON ad.id = d.uploader_id`

var documentSortColumns = map[string]string{
	"name":        "d.name",
	"category":    "d.category",
	"uploaded_at": "d.uploaded_at",
}

func scanDocument(row pgx.Row) (*sitecontent.Document, error) {
	var doc sitecontent.Document
	err := row.Scan(
		&doc.ID, &doc.Name, &doc.Slug, &doc.URL, &doc.Size, &doc.Category,
		&doc.UploaderID, &doc.Uploader, &doc.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func documentConds(f sitecontent.DocumentFilter) *condBuilder {
	b := &condBuilder{}
	if f.Name != "" {
		b.add("d.name ILIKE '%%' || $%d || '%%'", f.Name)
	}
	if f.Category != "" {
		b.add("d.category = $%d", f.Category)
	}
	if f.UploaderID != nil {
		b.add("d.uploader_id = $%d", *f.UploaderID)
	}
	b.addRange("d.uploaded_at", f.UploadedIn)
	return b
}

func (r *Repository) CreateDocument(ctx context.Context, doc *sitecontent.Document) error {
	query := `
		INSERT INTO document (id, name, slug, url, size, category, uploader_id, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		doc.ID, doc.Name, doc.Slug, doc.URL, doc.Size, doc.Category,
		doc.UploaderID, doc.UploadedAt)
	if err != nil {
		return r.handlePostgresError("create document", err)
	}
	return nil
}

func (r *Repository) GetDocument(ctx context.Context, id uuid.UUID) (*sitecontent.Document, error) {
	query := `SELECT` + documentColumns + documentFrom + ` WHERE d.id = $1`
	doc, err := scanDocument(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (r *Repository) GetDocumentBySlug(ctx context.Context, slug string) (*sitecontent.Document, error) {
	query := `SELECT` + documentColumns + documentFrom + ` WHERE d.slug = $1`
	doc, err := scanDocument(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (r *Repository) ListDocuments(ctx context.Context, f sitecontent.DocumentFilter) ([]*sitecontent.Document, error) {
	b := documentConds(f)
	query := `SELECT` + documentColumns + documentFrom + b.where() +
		orderClause(documentSortColumns, f.SortBy, "d.uploaded_at", f.Order) +
		limitClause(f.Offset, f.Limit)

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var documents []*sitecontent.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		documents = append(documents, doc)
	}
	return documents, rows.Err()
}

func (r *Repository) CountDocuments(ctx context.Context, f sitecontent.DocumentFilter) (int64, error) {
	b := documentConds(f)
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+documentFrom+b.where(), b.args...).Scan(&count)
	return count, err
}

func (r *Repository) NewestDocumentActivity(ctx context.Context, f sitecontent.DocumentFilter) (*time.Time, error) {
	b := documentConds(f)
	return scanNewest(r.db.QueryRow(ctx, `SELECT MAX(d.uploaded_at)`+documentFrom+b.where(), b.args...))
}

func (r *Repository) DocumentNameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM document WHERE name = $1)`, name).Scan(&exists)
	return exists, err
}

func (r *Repository) UpdateDocument(ctx context.Context, doc *sitecontent.Document) error {
	query := `
		UPDATE document SET name = $2, slug = $3, url = $4, size = $5,
			category = $6, uploaded_at = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		doc.ID, doc.Name, doc.Slug, doc.URL, doc.Size, doc.Category, doc.UploadedAt)
	if err != nil {
		return r.handlePostgresError("update document", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrDocumentNotFound
	}
	return nil
}

func (r *Repository) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM document WHERE id = $1`, id)
	if err != nil {
		return r.handlePostgresError("delete document", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrDocumentNotFound
	}
	return nil
}

// Business operations

const businessColumns = `
	b.id, b.title, b.slug, b.description, b.header_slug, b.header_url,
	b.product_header_slug, b.product_header_url, b.created_at, b.updated_at`

const businessFrom = ` FROM business b`

var businessSortColumns = map[string]string{
	"title":      "b.title",
	"created_at": "b.created_at",
	"updated_at": "b.updated_at",
}

func scanBusiness(row pgx.Row) (*sitecontent.Business, error) {
	var business sitecontent.Business
	err := row.Scan(
		&business.ID, &business.Title, &business.Slug, &business.Description,
		&business.Header.Slug, &business.Header.URL,
		&business.ProductHeader.Slug, &business.ProductHeader.URL,
		&business.CreatedAt, &business.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func businessConds(f sitecontent.BusinessFilter) *condBuilder {
	b := &condBuilder{}
	if f.Title != "" {
		b.add("b.title ILIKE '%%' || $%d || '%%'", f.Title)
	}
	if f.ExcludeID != nil {
		b.add("b.id <> $%d", *f.ExcludeID)
	}
	b.addRange("b.updated_at", f.UpdatedIn)
	return b
}

func (r *Repository) CreateBusiness(ctx context.Context, business *sitecontent.Business) error {
	query := `
		INSERT INTO business (id, title, slug, description, header_slug, header_url,
			product_header_slug, product_header_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		business.ID, business.Title, business.Slug, business.Description,
		business.Header.Slug, business.Header.URL,
		business.ProductHeader.Slug, business.ProductHeader.URL,
		business.CreatedAt, business.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("create business", err)
	}
	return nil
}

func (r *Repository) GetBusiness(ctx context.Context, id uuid.UUID) (*sitecontent.Business, error) {
	query := `SELECT` + businessColumns + businessFrom + ` WHERE b.id = $1`
	business, err := scanBusiness(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrBusinessNotFound
		}
		return nil, err
	}
	return business, nil
}

func (r *Repository) GetBusinessBySlug(ctx context.Context, slug string) (*sitecontent.Business, error) {
	query := `SELECT` + businessColumns + businessFrom + ` WHERE b.slug = $1`
	business, err := scanBusiness(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrBusinessNotFound
		}
		return nil, err
	}

	business.Products, err = r.ListProducts(ctx, sitecontent.ProductFilter{BusinessID: &business.ID})
	if err != nil {
		return nil, err
	}
	business.Projects, err = r.ListProjects(ctx, sitecontent.ProjectFilter{BusinessID: &business.ID})
	if err != nil {
		return nil, err
	}
	return business, nil
}

func (r *Repository) ListBusinesses(ctx context.Context, f sitecontent.BusinessFilter) ([]*sitecontent.Business, error) {
	b := businessConds(f)
	query := `SELECT` + businessColumns + businessFrom + b.where() +
		orderClause(businessSortColumns, f.SortBy, "b.updated_at", f.Order) +
		limitClause(f.Offset, f.Limit)

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []*sitecontent.Business
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, business)
	}
	return businesses, rows.Err()
}

func (r *Repository) CountBusinesses(ctx context.Context, f sitecontent.BusinessFilter) (int64, error) {
	b := businessConds(f)
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+businessFrom+b.where(), b.args...).Scan(&count)
	return count, err
}

func (r *Repository) NewestBusinessActivity(ctx context.Context, f sitecontent.BusinessFilter) (*time.Time, error) {
	b := businessConds(f)
	return scanNewest(r.db.QueryRow(ctx, `SELECT MAX(b.updated_at)`+businessFrom+b.where(), b.args...))
}

func (r *Repository) ListBusinessMetadata(ctx context.Context) ([]sitecontent.EntityMetadata, error) {
	return r.listMetadata(ctx, `SELECT id, title, slug FROM business ORDER BY title ASC`)
}

func (r *Repository) UpdateBusiness(ctx context.Context, business *sitecontent.Business) error {
	query := `
		UPDATE business SET title = $2, slug = $3, description = $4,
			header_slug = $5, header_url = $6,
			product_header_slug = $7, product_header_url = $8, updated_at = $9
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		business.ID, business.Title, business.Slug, business.Description,
		business.Header.Slug, business.Header.URL,
		business.ProductHeader.Slug, business.ProductHeader.URL,
		business.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("update business", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrBusinessNotFound
	}
	return nil
}

func (r *Repository) DeleteBusiness(ctx context.Context, id uuid.UUID) error {
	// Child products and projects go via ON DELETE CASCADE.
	tag, err := r.db.Exec(ctx, `DELETE FROM business WHERE id = $1`, id)
	if err != nil {
		return r.handlePostgresError("delete business", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrBusinessNotFound
	}
	return nil
}

// Product operations

const productColumns = `
	p.id, p.business_id, p.title, p.slug, p.description,
	COALESCE(b.title, ''), p.media, p.created_at, p.updated_at`

const productFrom = ` FROM product p LEFT JOIN business b ON b.id = p.business_id`

var productSortColumns = map[string]string{
	"title":      "p.title",
	"created_at": "p.created_at",
	"updated_at": "p.updated_at",
}

func scanProduct(row pgx.Row) (*sitecontent.Product, error) {
	var product sitecontent.Product
	var mediaJSON []byte
	err := row.Scan(
		&product.ID, &product.BusinessID, &product.Title, &product.Slug,
		&product.Description, &product.BusinessTitle, &mediaJSON,
		&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(mediaJSON) > 0 {
		if err := json.Unmarshal(mediaJSON, &product.Media); err != nil {
			return nil, fmt.Errorf("decode product media: %w", err)
		}
	}
	return &product, nil
}

func productConds(f sitecontent.ProductFilter) *condBuilder {
	b := &condBuilder{}
	if f.Title != "" {
		b.add("p.title ILIKE '%%' || $%d || '%%'", f.Title)
	}
	if f.BusinessID != nil {
		b.add("p.business_id = $%d", *f.BusinessID)
	}
	if f.ExcludeID != nil {
		b.add("p.id <> $%d", *f.ExcludeID)
	}
	b.addRange("p.updated_at", f.UpdatedIn)
	return b
}

func marshalMedia(media []sitecontent.MediaRef) ([]byte, error) {
	if media == nil {
		media = []sitecontent.MediaRef{}
	}
	return json.Marshal(media)
}

func (r *Repository) CreateProduct(ctx context.Context, product *sitecontent.Product) error {
	mediaJSON, err := marshalMedia(product.Media)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO product (id, business_id, title, slug, description, media, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.db.Exec(ctx, query,
		product.ID, product.BusinessID, product.Title, product.Slug,
		product.Description, mediaJSON, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("create product", err)
	}
	return nil
}

func (r *Repository) GetProduct(ctx context.Context, id uuid.UUID) (*sitecontent.Product, error) {
	query := `SELECT` + productColumns + productFrom + ` WHERE p.id = $1`
	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *Repository) GetProductBySlug(ctx context.Context, slug string) (*sitecontent.Product, error) {
	query := `SELECT` + productColumns + productFrom + ` WHERE p.slug = $1`
	product, err := scanProduct(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *Repository) ListProducts(ctx context.Context, f sitecontent.ProductFilter) ([]*sitecontent.Product, error) {
	b := productConds(f)
	query := `SELECT` + productColumns + productFrom + b.where() +
		orderClause(productSortColumns, f.SortBy, "p.updated_at", f.Order) +
		limitClause(f.Offset, f.Limit)

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*sitecontent.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *Repository) CountProducts(ctx context.Context, f sitecontent.ProductFilter) (int64, error) {
	b := productConds(f)
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+productFrom+b.where(), b.args...).Scan(&count)
	return count, err
}

func (r *Repository) NewestProductActivity(ctx context.Context, f sitecontent.ProductFilter) (*time.Time, error) {
	b := productConds(f)
	return scanNewest(r.db.QueryRow(ctx, `SELECT MAX(p.updated_at)`+productFrom+b.where(), b.args...))
}

func (r *Repository) UpdateProduct(ctx context.Context, product *sitecontent.Product) error {
	mediaJSON, err := marshalMedia(product.Media)
	if err != nil {
		return err
	}

	query := `
		UPDATE product SET title = $2, slug = $3, description = $4, media = $5, updated_at = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		product.ID, product.Title, product.Slug, product.Description,
		mediaJSON, product.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("update product", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrProductNotFound
	}
	return nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM product WHERE id = $1`, id)
	if err != nil {
		return r.handlePostgresError("delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrProductNotFound
	}
	return nil
}

// Project operations

const projectColumns = `
	p.id, p.business_id, p.title, p.slug, p.description,
	COALESCE(b.title, ''), p.header_slug, p.header_url, p.media,
	p.created_at, p.updated_at`

const projectFrom = ` FROM project p LEFT JOIN business b ON b.id = p.business_id`

var projectSortColumns = map[string]string{
	"title":      "p.title",
	"created_at": "p.created_at",
	"updated_at": "p.updated_at",
}

func scanProject(row pgx.Row) (*sitecontent.Project, error) {
	var project sitecontent.Project
	var mediaJSON []byte
	err := row.Scan(
		&project.ID, &project.BusinessID, &project.Title, &project.Slug,
		&project.Description, &project.BusinessTitle,
		&project.Header.Slug, &project.Header.URL, &mediaJSON,
		&project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(mediaJSON) > 0 {
		if err := json.Unmarshal(mediaJSON, &project.Media); err != nil {
			return nil, fmt.Errorf("decode project media: %w", err)
		}
	}
	return &project, nil
}

func projectConds(f sitecontent.ProjectFilter) *condBuilder {
	b := &condBuilder{}
	if f.Title != "" {
		b.add("p.title ILIKE '%%' || $%d || '%%'", f.Title)
	}
	if f.BusinessID != nil {
		b.add("p.business_id = $%d", *f.BusinessID)
	}
	if f.ExcludeID != nil {
		b.add("p.id <> $%d", *f.ExcludeID)
	}
	b.addRange("p.updated_at", f.UpdatedIn)
	return b
}

func (r *Repository) CreateProject(ctx context.Context, project *sitecontent.Project) error {
	mediaJSON, err := marshalMedia(project.Media)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO project (id, business_id, title, slug, description,
			header_slug, header_url, media, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.db.Exec(ctx, query,
		project.ID, project.BusinessID, project.Title, project.Slug,
		project.Description, project.Header.Slug, project.Header.URL,
		mediaJSON, project.CreatedAt, project.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("create project", err)
	}
	return nil
}

func (r *Repository) GetProject(ctx context.Context, id uuid.UUID) (*sitecontent.Project, error) {
	query := `SELECT` + projectColumns + projectFrom + ` WHERE p.id = $1`
	project, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (r *Repository) GetProjectBySlug(ctx context.Context, slug string) (*sitecontent.Project, error) {
	query := `SELECT` + projectColumns + projectFrom + ` WHERE p.slug = $1`
	project, err := scanProject(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (r *Repository) ListProjects(ctx context.Context, f sitecontent.ProjectFilter) ([]*sitecontent.Project, error) {
	b := projectConds(f)
	query := `SELECT` + projectColumns + projectFrom + b.where() +
		orderClause(projectSortColumns, f.SortBy, "p.updated_at", f.Order) +
		limitClause(f.Offset, f.Limit)

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*sitecontent.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func (r *Repository) CountProjects(ctx context.Context, f sitecontent.ProjectFilter) (int64, error) {
	b := projectConds(f)
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+projectFrom+b.where(), b.args...).Scan(&count)
	return count, err
}

func (r *Repository) NewestProjectActivity(ctx context.Context, f sitecontent.ProjectFilter) (*time.Time, error) {
	b := projectConds(f)
	return scanNewest(r.db.QueryRow(ctx, `SELECT MAX(p.updated_at)`+projectFrom+b.where(), b.args...))
}

func (r *Repository) UpdateProject(ctx context.Context, project *sitecontent.Project) error {
	mediaJSON, err := marshalMedia(project.Media)
	if err != nil {
		return err
	}

	query := `
		UPDATE project SET title = $2, slug = $3, description = $4,
			header_slug = $5, header_url = $6, media = $7, updated_at = $8
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		project.ID, project.Title, project.Slug, project.Description,
		project.Header.Slug, project.Header.URL, mediaJSON, project.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("update project", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrProjectNotFound
	}
	return nil
}

func (r *Repository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM project WHERE id = $1`, id)
	if err != nil {
		return r.handlePostgresError("delete project", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrProjectNotFound
	}
	return nil
}

// Admin operations

func (r *Repository) CreateAdmin(ctx context.Context, admin *sitecontent.Admin) error {
	query := `
		INSERT INTO admin (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		admin.ID, admin.Username, admin.Email, admin.PasswordHash,
		admin.CreatedAt, admin.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("create admin", err)
	}
	return nil
}

func (r *Repository) GetAdmin(ctx context.Context, id uuid.UUID) (*sitecontent.Admin, error) {
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM admin WHERE id = $1`

	var admin sitecontent.Admin
	err := r.db.QueryRow(ctx, query, id).Scan(
		&admin.ID, &admin.Username, &admin.Email, &admin.PasswordHash,
		&admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *Repository) GetAdminByUsername(ctx context.Context, username string) (*sitecontent.Admin, error) {
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM admin WHERE username = $1`

	var admin sitecontent.Admin
	err := r.db.QueryRow(ctx, query, username).Scan(
		&admin.ID, &admin.Username, &admin.Email, &admin.PasswordHash,
		&admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sitecontent.ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *Repository) UpdateAdmin(ctx context.Context, admin *sitecontent.Admin) error {
	query := `
		UPDATE admin SET username = $2, email = $3, password_hash = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		admin.ID, admin.Username, admin.Email, admin.PasswordHash, admin.UpdatedAt)
	if err != nil {
		return r.handlePostgresError("update admin", err)
	}
	if tag.RowsAffected() == 0 {
		return sitecontent.ErrAdminNotFound
	}
	return nil
}

// Contact operations

func (r *Repository) CreateContactMessage(ctx context.Context, msg *sitecontent.ContactMessage) error {
	query := `
		INSERT INTO contact_message (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, msg.ID, msg.Name, msg.Email, msg.Message, msg.CreatedAt)
	if err != nil {
		return r.handlePostgresError("create contact message", err)
	}
	return nil
}

func (r *Repository) ListContactMessages(ctx context.Context, offset, limit int) ([]*sitecontent.ContactMessage, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM contact_message ORDER BY created_at DESC` + limitClause(offset, limit)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*sitecontent.ContactMessage
	for rows.Next() {
		var msg sitecontent.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &msg)
	}
	return messages, rows.Err()
}
