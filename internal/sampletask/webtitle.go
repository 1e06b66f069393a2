// Package sampletask는 engine.Engine에 등록 가능한 최소 샘플 작업을 제공합니다.
//
// 이 작업은 어느 특정 사이트의 스크래퍼도 대체하지 않으며, engine.Register가
// 기대하는 콜러블의 모양(첫 번째 인자는 context.Context, 반환값은 값 하나와 선택적인 error)을
// 보여주기 위한 참조용 구현입니다.
package sampletask

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	apperrors "github.com/darkkaiser/task-engine/internal/pkg/errors"
	applog "github.com/darkkaiser/task-engine/pkg/log"
	"golang.org/x/net/html/charset"
)

// componentWebTitle 로깅용 컴포넌트 이름입니다.
const componentWebTitle = "sampletask.webtitle"

// FetchPageTitle은 url이 가리키는 페이지를 내려받아 <title> 태그의 내용을
// 반환합니다. engine.Engine.Register(taskType, FetchPageTitle, ...)로 등록되면
// ctx는 해당 작업 인스턴스의 협조적 중단 플래그를 담고 있는 context이다.
func FetchPageTitle(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("요청을 생성할 수 없습니다: %s", url))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.System, fmt.Sprintf("페이지 요청에 실패했습니다: %s", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.New(apperrors.System, fmt.Sprintf("페이지 요청이 실패했습니다(status=%d): %s", resp.StatusCode, url))
	}

	doc, err := goquery.NewDocumentFromReader(decodeToUTF8(resp.Body, resp.Header.Get("Content-Type")))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.Internal, fmt.Sprintf("HTML 파싱에 실패했습니다: %s", url))
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	applog.WithComponentAndFields(componentWebTitle, applog.Fields{
		"url":   url,
		"title": title,
	}).Debug("페이지 제목을 추출했습니다")

	return title, nil
}

// decodeToUTF8는 응답 본문을 1KB만 미리 읽어 인코딩을 감지한 뒤, EUC-KR 등
// 비UTF-8로 서빙되는 국내 사이트도 goquery가 올바르게 파싱하도록 변환 리더로
// 감싼다. 감지에 실패하면 원본을 그대로 반환한다(대부분의 경우 이미 UTF-8이다).
func decodeToUTF8(body io.Reader, contentType string) io.Reader {
	bufReader := bufio.NewReader(body)

	const peekSize = 1024
	peekBytes, _ := bufReader.Peek(peekSize)

	e, name, _ := charset.DetermineEncoding(peekBytes, contentType)
	if name == "" || e == nil {
		return bufReader
	}
	return e.NewDecoder().Reader(bufReader)
}
